package sough

import "math/rand"

// transient is a countdown-driven burst: armed by a low-probability draw,
// it contributes to the output for a fixed number of samples with an
// amplitude envelope that fades linearly to zero, so an expiring event
// never cuts off with a click.
type transient struct {
	remaining int
	length    int

	// Burst parameters, re-randomized by the owning generator each time
	// the transient is armed.
	intensity float64
	freq      float64
}

// active reports whether a burst is in progress.
func (t *transient) active() bool {
	return t.remaining > 0
}

// arm starts a new burst lasting n samples.
func (t *transient) arm(n int) {
	t.remaining = n
	t.length = n
}

// fade returns the linear envelope for the current sample and advances the
// countdown. It returns zero when no burst is active.
func (t *transient) fade() float64 {
	if t.remaining <= 0 {
		return 0
	}
	f := float64(t.remaining) / float64(t.length)
	t.remaining--
	return f
}

// oneIn reports a 1-in-n chance, drawn once per sample. An average event
// spacing of ten seconds is expressed as oneIn(rng, SampleRate*10).
func oneIn(rng *rand.Rand, n int) bool {
	return rng.Intn(n) == 0
}
