package sough

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

// meterWindow is how many device buffers the level meter averages over.
const meterWindow = 8

// PortAudioSink plays a stream on the default output device. It pulls
// directly into the device buffer from the real-time callback; the only
// work layered on top of the stream's own fill is the sink-side volume
// scale and the level meter, both lock-free.
type PortAudioSink struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	src    *Stream
	volume atomic.Uint64
	meter  *Meter
}

// NewPortAudioSink initializes PortAudio and returns a sink for the
// default output device. Close must be called to terminate PortAudio.
func NewPortAudioSink() (*PortAudioSink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	s := &PortAudioSink{meter: NewMeter(meterWindow)}
	s.volume.Store(math.Float64bits(1))
	return s, nil
}

// Start opens the default stereo output stream and begins pulling from
// src on the device's callback thread.
func (s *PortAudioSink) Start(src *Stream) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		return errors.New("sink is already started")
	}

	// src is set before the device starts and cleared after it stops,
	// so the callback never races the swap.
	s.src = src
	stream, err := portaudio.OpenDefaultStream(0, Channels, float64(SampleRate), portaudio.FramesPerBufferUnspecified, s.callback)
	if err != nil {
		s.src = nil
		return fmt.Errorf("error opening stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		s.src = nil
		return fmt.Errorf("error starting stream: %w", err)
	}
	s.stream = stream
	return nil
}

// callback runs on the device thread. It must not allocate, block, or
// take locks.
func (s *PortAudioSink) callback(out []float32) {
	src := s.src
	if src == nil {
		for i := range out {
			out[i] = 0
		}
		return
	}

	src.Fill(out, len(out)/Channels)

	if vol := float32(math.Float64frombits(s.volume.Load())); vol != 1 {
		for i := range out {
			out[i] *= vol
		}
	}
	s.meter.observe(out)
}

// Stop halts playback. portaudio's Stream.Stop waits for pending buffers
// to finish, so once Stop returns the stream is no longer being pulled.
func (s *PortAudioSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return nil
	}
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("error stopping stream: %w", err)
	}
	err := s.stream.Close()
	s.stream = nil
	s.src = nil
	if err != nil {
		return fmt.Errorf("error closing stream: %w", err)
	}
	return nil
}

// SetVolume provides a thread-safe way to update the output volume.
func (s *PortAudioSink) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.volume.Store(math.Float64bits(v))
}

// Level reports the smoothed RMS level of recent output, after volume.
func (s *PortAudioSink) Level() float64 {
	return s.meter.Level()
}

// Close stops playback and terminates PortAudio.
func (s *PortAudioSink) Close() error {
	if err := s.Stop(); err != nil {
		return err
	}
	return portaudio.Terminate()
}
