package sough

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Presets overrides per-scene bed tuning. The built-in constants were
// tuned by ear, so they are exposed as presets rather than derived values;
// fields left unset keep the defaults. Event timing and probability
// constants are not tunable.
type Presets struct {
	Scenes map[string]ScenePreset `toml:"scenes"`
}

// ScenePreset overrides one scene's bed filter coefficient and gain.
type ScenePreset struct {
	Feedback *float64 `toml:"feedback"`
	Gain     *float64 `toml:"gain"`
}

// ParsePresetsFile loads scene presets from a TOML file, for example:
//
//	[scenes.rain]
//	feedback = 0.9
//	gain = 0.3
func ParsePresetsFile(file string) (*Presets, error) {
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file at %q: %w", file, err)
	}

	var p Presets
	if err := toml.Unmarshal(bs, &p); err != nil {
		return nil, fmt.Errorf("failed to parse Presets from TOML file %q: %w", file, err)
	}

	for name, sp := range p.Scenes {
		if _, ok := SceneNamed(name); !ok {
			return nil, fmt.Errorf("preset for unknown scene %q in %q", name, file)
		}
		// A feedback coefficient outside (0, 1) makes the bed filter
		// diverge instead of smoothing.
		if sp.Feedback != nil && (*sp.Feedback <= 0 || *sp.Feedback >= 1) {
			return nil, fmt.Errorf("preset %q: feedback must be in (0, 1), got %v", name, *sp.Feedback)
		}
		if sp.Gain != nil && (*sp.Gain < 0 || *sp.Gain > 1) {
			return nil, fmt.Errorf("preset %q: gain must be in [0, 1], got %v", name, *sp.Gain)
		}
	}

	return &p, nil
}

// tuningFor resolves the bed tuning for scene, overlaying any preset on
// the defaults.
func tuningFor(scene Scene, presets *Presets) tuning {
	t := defaultTuning[scene]
	if presets == nil {
		return t
	}
	sp, ok := presets.Scenes[scene.String()]
	if !ok {
		return t
	}
	if sp.Feedback != nil {
		t.feedback = *sp.Feedback
	}
	if sp.Gain != nil {
		t.gain = *sp.Gain
	}
	return t
}
