package sough

import "math/rand"

// Scene identifies one soundscape algorithm. It is only consulted at
// construction time; a running Stream cannot change scene.
type Scene int

const (
	WhiteNoise Scene = iota
	BrownNoise
	PinkNoise
	Rain
	Thunder
	Ocean
	Forest
	Fire
	Wind
	Cafe
)

var sceneNames = [...]string{
	WhiteNoise: "white",
	BrownNoise: "brown",
	PinkNoise:  "pink",
	Rain:       "rain",
	Thunder:    "thunder",
	Ocean:      "ocean",
	Forest:     "forest",
	Fire:       "fire",
	Wind:       "wind",
	Cafe:       "cafe",
}

func (s Scene) String() string {
	if s < 0 || int(s) >= len(sceneNames) {
		return "unknown"
	}
	return sceneNames[s]
}

// Scenes returns every available scene in display order.
func Scenes() []Scene {
	out := make([]Scene, len(sceneNames))
	for i := range out {
		out[i] = Scene(i)
	}
	return out
}

// SceneNamed maps a name, as printed by Scene.String, back to its Scene.
func SceneNamed(name string) (Scene, bool) {
	for i, n := range sceneNames {
		if n == name {
			return Scene(i), true
		}
	}
	return WhiteNoise, false
}

// defaultTuning holds each scene's bed filter coefficient and gain. These
// values were tuned by ear and are the contract for how each scene sounds;
// Presets can override them per scene.
var defaultTuning = map[Scene]tuning{
	Rain:    {feedback: 0.95, gain: 0.4},
	Thunder: {feedback: 0.95, gain: 0.4},
	Ocean:   {feedback: 0.98, gain: 0.5},
	Forest:  {feedback: 0.99, gain: 0.15},
	Fire:    {feedback: 0.8, gain: 0.2},
	Wind:    {feedback: 0.97, gain: 0.4},
	Cafe:    {feedback: 0.95, gain: 0.25},
}

type tuning struct {
	feedback float64
	gain     float64
}

// New builds a fresh stream for scene, seeded with seed. All generator
// state starts at zero. Construction cannot fail: an unrecognized scene
// value falls back to white noise.
func New(scene Scene, seed int64) *Stream {
	return NewTuned(scene, seed, nil)
}

// NewTuned is New with an optional preset overlay for the scene's bed
// tuning. A nil presets keeps the defaults.
func NewTuned(scene Scene, seed int64, presets *Presets) *Stream {
	rng := rand.New(rand.NewSource(seed))
	t := tuningFor(scene, presets)

	var g Generator
	switch scene {
	case BrownNoise:
		g = newBrownNoise(rng)
	case PinkNoise:
		g = newPinkNoise(rng)
	case Rain, Cafe:
		g = newBed(rng, t.feedback, t.gain)
	case Thunder:
		g = newThunder(rng, t.feedback, t.gain)
	case Ocean:
		g = newOcean(rng, t.feedback, t.gain)
	case Forest:
		g = newForest(rng, t.feedback, t.gain)
	case Fire:
		g = newFire(rng, t.feedback, t.gain)
	case Wind:
		g = newWind(rng, t.feedback, t.gain)
	default:
		scene = WhiteNoise
		g = &whiteNoise{rng: rng}
	}
	return &Stream{scene: scene, gen: g}
}
