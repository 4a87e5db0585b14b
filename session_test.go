package sough

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// fakeSink records sink operations and exposes the bound stream so tests
// can pull from it.
type fakeSink struct {
	mu        sync.Mutex
	stream    *Stream
	volume    float64
	starts    int
	stops     int
	failStart error
}

func (f *fakeSink) Start(stream *Stream) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failStart != nil {
		return f.failStart
	}
	f.stream = stream
	f.starts++
	return nil
}

func (f *fakeSink) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stream = nil
	f.stops++
	return nil
}

func (f *fakeSink) SetVolume(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = v
}

func (f *fakeSink) bound() *Stream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stream
}

func newTestSession(sink Sink) *Session {
	s := NewSession(sink)
	s.seedFn = func() int64 { return 1234 }
	return s
}

func TestTogglePlayStartsAndStops(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	if st := sess.Status(); st.Playing {
		t.Fatal("new session reports playing")
	}

	playing, err := sess.TogglePlay()
	if err != nil || !playing {
		t.Fatalf("TogglePlay = %v, %v; want true, nil", playing, err)
	}
	if sink.starts != 1 || sink.bound() == nil {
		t.Fatalf("sink not started: starts=%d stream=%v", sink.starts, sink.bound())
	}
	if st := sess.Status(); !st.Playing {
		t.Fatal("session not playing after toggle")
	}

	playing, err = sess.TogglePlay()
	if err != nil || playing {
		t.Fatalf("TogglePlay = %v, %v; want false, nil", playing, err)
	}
	if sink.stops != 1 {
		t.Fatalf("sink stops = %d, want 1", sink.stops)
	}
	if st := sess.Status(); st.Playing {
		t.Fatal("session still playing after second toggle")
	}
}

func TestSelectWhileIdleOnlyRecordsScene(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	if err := sess.Select(Ocean); err != nil {
		t.Fatal(err)
	}
	if sink.starts != 0 || sink.stops != 0 {
		t.Fatalf("idle select touched the sink: starts=%d stops=%d", sink.starts, sink.stops)
	}
	if st := sess.Status(); st.Scene != Ocean || st.Playing {
		t.Fatalf("status = %+v, want ocean, idle", st)
	}
}

func TestSelectWhilePlayingRestartsWithNewStream(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	if err := sess.Select(Rain); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.TogglePlay(); err != nil {
		t.Fatal(err)
	}
	first := sink.bound()

	if err := sess.Select(Fire); err != nil {
		t.Fatal(err)
	}
	if sink.stops != 1 || sink.starts != 2 {
		t.Fatalf("scene change: stops=%d starts=%d, want 1 and 2", sink.stops, sink.starts)
	}
	second := sink.bound()
	if second == nil || second == first {
		t.Fatal("scene change did not swap in a fresh stream")
	}
	if second.Scene() != Fire {
		t.Fatalf("new stream scene = %v, want %v", second.Scene(), Fire)
	}
	if st := sess.Status(); !st.Playing {
		t.Fatal("session stopped playing across a scene change")
	}
}

func TestTogglePlayReportsSinkBindFailure(t *testing.T) {
	bindErr := errors.New("no output device")
	sink := &fakeSink{failStart: bindErr}
	sess := newTestSession(sink)

	playing, err := sess.TogglePlay()
	if !errors.Is(err, bindErr) {
		t.Fatalf("err = %v, want %v", err, bindErr)
	}
	if playing {
		t.Fatal("session reports playing after bind failure")
	}
	if st := sess.Status(); st.Playing {
		t.Fatal("status reports playing after bind failure")
	}
}

func TestSetVolumeClampsAndForwards(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	sess.SetVolume(-0.5)
	if sink.volume != 0 || sess.Status().Volume != 0 {
		t.Fatalf("volume after -0.5: sink=%v session=%v, want 0", sink.volume, sess.Status().Volume)
	}
	sess.SetVolume(1.5)
	if sink.volume != 1 || sess.Status().Volume != 1 {
		t.Fatalf("volume after 1.5: sink=%v session=%v, want 1", sink.volume, sess.Status().Volume)
	}
}

func TestRainPlaybackEndToEnd(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	if err := sess.Select(Rain); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.TogglePlay(); err != nil {
		t.Fatal(err)
	}

	stream := sink.bound()
	if stream == nil {
		t.Fatal("no stream bound to the sink")
	}

	// One second of rain must be in bounds and audibly non-silent.
	const frames = SampleRate
	buf := make([]float32, frames*Channels)
	if n := stream.Fill(buf, frames); n != frames {
		t.Fatalf("Fill returned %d, want %d", n, frames)
	}
	var peak float64
	for i, v := range buf {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d: %v out of [-1, 1]", i, v)
		}
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	if peak < 0.01 {
		t.Fatalf("peak %v, output is effectively silent", peak)
	}

	// Muting is sink-side only: the generator keeps producing full-scale
	// samples underneath.
	sess.SetVolume(0)
	if sink.volume != 0 {
		t.Fatalf("sink volume = %v, want 0", sink.volume)
	}
	stream.Fill(buf, frames)
	peak = 0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	if peak < 0.01 {
		t.Fatal("muting the sink silenced the generator itself")
	}
}

func TestCloseStopsPlayback(t *testing.T) {
	sink := &fakeSink{}
	sess := newTestSession(sink)

	if _, err := sess.TogglePlay(); err != nil {
		t.Fatal(err)
	}
	if err := sess.Close(); err != nil {
		t.Fatal(err)
	}
	if sink.stops != 1 {
		t.Fatalf("sink stops = %d, want 1", sink.stops)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if sink.stops != 1 {
		t.Fatal("idle Close touched the sink")
	}
}
