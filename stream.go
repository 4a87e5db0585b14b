// Package sough synthesizes ambient soundscapes (rain, thunder, ocean,
// forest, fire, wind, café murmur and plain noise) as infinite pull-based
// sample streams, with no recorded sample data.
package sough

// SampleRate is a good sample rate since it is at least twice as much as 20kHz,
// the upper bound for human hearing. See https://audio46.com/blogs/audio46-guidepost/what-is-sample-rate-and-bit-depth-do-they-matter for more.
const SampleRate = 44100

// Channels is the number of interleaved output channels. Every stream
// produces a mono signal duplicated into each channel.
const Channels = 2

// A Generator produces one mono sample per call. Implementations own all
// of their state, including their random source, and are advanced strictly
// in sample order by a single caller.
type Generator interface {
	Next() float64
}

// A Stream is an infinite, stateful source of interleaved audio frames.
// It is not restartable: once created for a scene it only moves forward,
// and its state is discarded when the scene is stopped or changed.
//
// A Stream must only ever be pulled by one caller at a time, typically an
// audio device callback.
type Stream struct {
	scene Scene
	gen   Generator
}

// Scene returns the scene this stream was built for.
func (s *Stream) Scene() Scene {
	return s.scene
}

// Fill populates out with the next frames frames of audio and returns the
// number of frames written, which is always frames: streams are infinite
// and never signal end-of-stream. The mono signal is duplicated into each
// channel and clamped to [-1, 1]. out must hold at least frames*Channels
// samples.
//
// Fill does not allocate, block, or take locks, so it is safe to call from
// a real-time audio callback.
func (s *Stream) Fill(out []float32, frames int) int {
	for i := 0; i < frames; i++ {
		v := s.gen.Next()
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		f := float32(v)
		for c := 0; c < Channels; c++ {
			out[i*Channels+c] = f
		}
	}
	return frames
}
