package sough

import (
	"math"
	"math/rand"
)

// bed is the continuous layer under every scene: white noise through a
// one-pole low-pass, scaled. Rain and café murmur are nothing but a bed;
// the heavier scenes layer a transient or a slow envelope on top.
type bed struct {
	rng  *rand.Rand
	lp   onePole
	gain float64
}

func newBed(rng *rand.Rand, feedback, gain float64) *bed {
	return &bed{rng: rng, lp: onePole{a: feedback}, gain: gain}
}

func (g *bed) Next() float64 {
	return g.gain * g.lp.process(white(g.rng))
}

const (
	// rumbleSamples is the fixed length of a thunder rumble (0.5s).
	rumbleSamples = SampleRate / 2
	// rumbleOdds yields about one strike per ten seconds.
	rumbleOdds = SampleRate * 10
)

// thunder wraps a rain bed and layers randomly timed rumble bursts on top.
// A rumble is fresh full-band noise at an intensity drawn in [0.3, 0.8),
// fading linearly over its half second.
type thunder struct {
	rng    *rand.Rand
	bed    *bed
	rumble transient
}

func newThunder(rng *rand.Rand, feedback, gain float64) *thunder {
	return &thunder{rng: rng, bed: newBed(rng, feedback, gain)}
}

func (g *thunder) Next() float64 {
	out := g.bed.Next()
	if !g.rumble.active() && oneIn(g.rng, rumbleOdds) {
		g.rumble.arm(rumbleSamples)
		g.rumble.intensity = 0.3 + 0.5*g.rng.Float64()
	}
	if f := g.rumble.fade(); f > 0 {
		out += white(g.rng) * g.rumble.intensity * f
	}
	return out
}

// oceanPhaseInc advances the swell by ~0.00005 rad per sample, one full
// wave cycle every ~2.85 seconds.
const oceanPhaseInc = 0.00005

// ocean modulates its bed with a slow sine swell.
type ocean struct {
	bed   *bed
	phase float64
}

func newOcean(rng *rand.Rand, feedback, gain float64) *ocean {
	return &ocean{bed: newBed(rng, feedback, gain)}
}

func (g *ocean) Next() float64 {
	swell := (math.Sin(g.phase) + 1) / 2
	g.phase += oceanPhaseInc
	return swell * g.bed.Next()
}

const (
	// chirpOdds yields about one bird chirp per three seconds.
	chirpOdds = SampleRate * 3
	// Chirp lengths are drawn uniformly from [chirpMinSamples, chirpMaxSamples).
	chirpMinSamples = 2000
	chirpMaxSamples = 8000
	// Chirp pitches are drawn uniformly from [chirpMinHz, chirpMaxHz).
	chirpMinHz = 2000.0
	chirpMaxHz = 4000.0
	chirpGain  = 0.3
)

// forest is a very heavily smoothed bed with sparse sine-tone bird chirps.
type forest struct {
	rng   *rand.Rand
	bed   *bed
	chirp transient
	phase float64
}

func newForest(rng *rand.Rand, feedback, gain float64) *forest {
	return &forest{rng: rng, bed: newBed(rng, feedback, gain)}
}

func (g *forest) Next() float64 {
	out := g.bed.Next()
	if !g.chirp.active() && oneIn(g.rng, chirpOdds) {
		g.chirp.arm(chirpMinSamples + g.rng.Intn(chirpMaxSamples-chirpMinSamples))
		g.chirp.freq = chirpMinHz + (chirpMaxHz-chirpMinHz)*g.rng.Float64()
		g.phase = 0
	}
	if f := g.chirp.fade(); f > 0 {
		out += chirpGain * f * math.Sin(g.phase)
		g.phase += 2 * math.Pi * g.chirp.freq / SampleRate
	}
	return out
}

const (
	// Crackle pops fire with probability popNum in popDen per sample.
	popNum = 3
	popDen = 1000
	// Pop lengths are drawn uniformly from [popMinSamples, popMaxSamples).
	popMinSamples = 50
	popMaxSamples = 200
)

// fire is a lightly smoothed bed with frequent short full-band crackle pops.
type fire struct {
	rng *rand.Rand
	bed *bed
	pop transient
}

func newFire(rng *rand.Rand, feedback, gain float64) *fire {
	return &fire{rng: rng, bed: newBed(rng, feedback, gain)}
}

func (g *fire) Next() float64 {
	out := g.bed.Next()
	if !g.pop.active() && g.rng.Intn(popDen) < popNum {
		g.pop.arm(popMinSamples + g.rng.Intn(popMaxSamples-popMinSamples))
		g.pop.intensity = 0.2 + 0.5*g.rng.Float64()
	}
	if f := g.pop.fade(); f > 0 {
		out += white(g.rng) * g.pop.intensity * f
	}
	return out
}

// windPhaseInc advances the primary gust cycle by ~2.04e-5 rad per sample,
// a full period every ~6.98 seconds; a second sine at 2.3x the rate
// (~3.03s) is superposed so the gust pattern does not audibly repeat.
const windPhaseInc = 0.0000204

// wind modulates its bed with two superposed slow sines.
type wind struct {
	bed   *bed
	phase float64
}

func newWind(rng *rand.Rand, feedback, gain float64) *wind {
	return &wind{bed: newBed(rng, feedback, gain)}
}

func (g *wind) Next() float64 {
	gust := (math.Sin(g.phase) + math.Sin(2.3*g.phase) + 2) / 4
	g.phase += windPhaseInc
	return gust * g.bed.Next()
}
