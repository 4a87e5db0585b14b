package sough

import (
	"sync"
	"time"
)

// Sink is the output boundary the session drives. The live implementation
// is PortAudioSink; tests substitute a recording fake.
type Sink interface {
	// Start binds stream as the sink's pull source and begins playback.
	// The sink pulls from the stream on its own callback thread until
	// Stop is called.
	Start(stream *Stream) error

	// Stop halts playback. It must not return until any in-flight pull
	// has completed, so the stream can be released afterwards.
	Stop() error

	// SetVolume sets the sink-side output volume in [0, 1]. It scales
	// the sink's output only, never the stream's samples.
	SetVolume(v float64)
}

// Status is a snapshot of a session's state.
type Status struct {
	Scene   Scene
	Playing bool
	Volume  float64
}

// Session owns at most one active stream and proxies scene selection,
// play/stop and volume to its sink. Control calls never mutate a live
// stream; a scene change while playing stops the sink, swaps in a freshly
// built stream and restarts, which is audible by design of the stop/start
// contract.
//
// Session methods are safe to call from one control goroutine while the
// sink pulls from the stream on its own thread.
type Session struct {
	mu      sync.Mutex
	sink    Sink
	scene   Scene
	stream  *Stream
	volume  float64
	playing bool
	presets *Presets

	// seedFn seeds each new stream; tests pin it for determinism.
	seedFn func() int64
}

// NewSession creates an idle session at full volume bound to sink.
func NewSession(sink Sink) *Session {
	return &Session{
		sink:   sink,
		volume: 1,
		seedFn: func() int64 { return time.Now().UnixNano() },
	}
}

// SetPresets applies a tuning overlay to streams built from now on. It
// does not retune a stream that is already playing.
func (s *Session) SetPresets(p *Presets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets = p
}

// Select chooses the scene. If the session is idle this only records
// which scene the next TogglePlay will use; if it is playing, the current
// stream is stopped and discarded and a fresh stream for the new scene is
// started in its place.
func (s *Session) Select(scene Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scene = scene
	if !s.playing {
		return nil
	}

	s.playing = false
	s.stream = nil
	if err := s.sink.Stop(); err != nil {
		return err
	}
	return s.start()
}

// TogglePlay starts playback when idle and stops it when playing. It
// returns whether the session is playing afterwards; if the sink fails to
// bind, the session stays idle and the error is reported.
func (s *Session) TogglePlay() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		s.playing = false
		s.stream = nil
		if err := s.sink.Stop(); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.start(); err != nil {
		return false, err
	}
	return true, nil
}

// start builds a fresh stream for the current scene and hands it to the
// sink. Callers must hold s.mu.
func (s *Session) start() error {
	stream := NewTuned(s.scene, s.seedFn(), s.presets)
	if err := s.sink.Start(stream); err != nil {
		return err
	}
	s.sink.SetVolume(s.volume)
	s.stream = stream
	s.playing = true
	return nil
}

// SetVolume clamps v to [0, 1] and forwards it to the sink. The stream's
// own samples are unaffected.
func (s *Session) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
	s.sink.SetVolume(v)
}

// Status reports the selected scene, whether the session is playing, and
// the current volume.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Scene: s.scene, Playing: s.playing, Volume: s.volume}
}

// Close stops playback if active and releases the stream.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return nil
	}
	s.playing = false
	s.stream = nil
	return s.sink.Stop()
}
