package sough

import (
	"math"
	"sync/atomic"
)

// floatRing is a circular buffer of float64 values.
type floatRing struct {
	data []float64
	head int
}

func newFloatRing(size int) *floatRing {
	if size < 1 {
		size = 1
	}
	return &floatRing{data: make([]float64, size)}
}

// insert inserts the new value into the buffer and advances the head.
func (r *floatRing) insert(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
}

// average returns the mean value across the buffer.
func (r *floatRing) average() float64 {
	var sum float64
	for _, v := range r.data {
		sum += v
	}
	return sum / float64(len(r.data))
}

// Meter smooths per-buffer RMS levels over a short window. observe has a
// single writer (the audio callback); Level may be read from any
// goroutine.
type Meter struct {
	ring  *floatRing
	level atomic.Uint64
}

// NewMeter returns a meter averaging over the last window buffers.
func NewMeter(window int) *Meter {
	return &Meter{ring: newFloatRing(window)}
}

// observe folds one filled output buffer into the meter.
func (m *Meter) observe(buf []float32) {
	if len(buf) == 0 {
		return
	}
	var sum float64
	for _, v := range buf {
		sum += float64(v) * float64(v)
	}
	m.ring.insert(math.Sqrt(sum / float64(len(buf))))
	m.level.Store(math.Float64bits(m.ring.average()))
}

// Level reports the smoothed RMS level of recent output.
func (m *Meter) Level() float64 {
	return math.Float64frombits(m.level.Load())
}
