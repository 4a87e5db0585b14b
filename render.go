package sough

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/go-audio/wav"
)

const (
	renderBitDepth    = 16
	renderChunkFrames = 4096
)

// WriteWAV renders seconds of audio from stream into w as a 16-bit PCM
// WAV file. The stream is advanced, not restarted, so successive calls
// continue where the previous render left off.
func WriteWAV(w io.WriteSeeker, stream *Stream, seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("render duration must be positive, got %v", seconds)
	}

	enc := wav.NewEncoder(w, SampleRate, renderBitDepth, Channels, 1)

	buf := make([]float32, renderChunkFrames*Channels)
	data := make([]float64, renderChunkFrames*Channels)
	fbuf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: Channels, SampleRate: SampleRate},
	}

	remaining := int(seconds * SampleRate)
	for remaining > 0 {
		frames := min(remaining, renderChunkFrames)
		stream.Fill(buf, frames)

		fbuf.Data = data[:frames*Channels]
		for i := range fbuf.Data {
			fbuf.Data[i] = float64(buf[i])
		}
		if err := transforms.PCMScale(fbuf, renderBitDepth); err != nil {
			return fmt.Errorf("failed to scale samples to PCM: %w", err)
		}
		ibuf := fbuf.AsIntBuffer()
		ibuf.SourceBitDepth = renderBitDepth
		if err := enc.Write(ibuf); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
		remaining -= frames
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}
