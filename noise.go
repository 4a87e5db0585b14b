package sough

import "math/rand"

// white returns a uniformly distributed sample in [-1, 1).
func white(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// noiseGain keeps the plain noise scenes at a comfortable level.
const noiseGain = 0.3

// brownGain compensates for the amplitude the heavy integrator eats.
const brownGain = 3.5

type whiteNoise struct {
	rng *rand.Rand
}

func (g *whiteNoise) Next() float64 {
	return noiseGain * white(g.rng)
}

// brownNoise integrates white noise with a 0.98 feedback coefficient and
// renormalizes the result.
type brownNoise struct {
	rng *rand.Rand
	lp  onePole
}

func newBrownNoise(rng *rand.Rand) *brownNoise {
	return &brownNoise{rng: rng, lp: onePole{a: 0.98}}
}

func (g *brownNoise) Next() float64 {
	return noiseGain * brownGain * g.lp.process(white(g.rng))
}

// pinkNoise smooths white noise with a 0.99 feedback coefficient, with no
// renormalization.
type pinkNoise struct {
	rng *rand.Rand
	lp  onePole
}

func newPinkNoise(rng *rand.Rand) *pinkNoise {
	return &pinkNoise{rng: rng, lp: onePole{a: 0.99}}
}

func (g *pinkNoise) Next() float64 {
	return noiseGain * g.lp.process(white(g.rng))
}
