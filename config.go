package siman

// ConfigPreset names a tuned starting point for AnnealerConfig. The knobs
// that drive calibration and equilibrium length scale with problem size
// automatically (they're multiplied by ProblemSize()), but some problem
// families converge more reliably with a looser or tighter cooling ratio
// and convergence tolerance than the plain defaults.
type ConfigPreset string

const (
	// PresetDefault is NewAnnealerConfig unchanged.
	PresetDefault ConfigPreset = "default"
	// PresetCombinatorialTour suits tour-construction problems (e.g. TSP)
	// where a single move perturbs two edges and equilibria are cheap:
	// cool a little faster and tolerate a slightly looser convergence gap.
	PresetCombinatorialTour ConfigPreset = "combinatorial_tour"
	// PresetOrderingSearch suits array/sequence-ordering problems (e.g.
	// inversion-count sort) where moves are single-element swaps: cool
	// more slowly since each move changes cost by very little.
	PresetOrderingSearch ConfigPreset = "ordering_search"
)

// NewPresetConfig returns a tuned AnnealerConfig for the given preset.
func NewPresetConfig(preset ConfigPreset) (AnnealerConfig, error) {
	cfg := NewAnnealerConfig()

	switch preset {
	case PresetDefault, "":
		// defaults already set.
	case PresetCombinatorialTour:
		cfg.CoolingRatio = 0.93
		cfg.ConvEpsilon = 1e-4
	case PresetOrderingSearch:
		cfg.CoolingRatio = 0.97
		cfg.RequiredImprovement = 0.05
	default:
		return AnnealerConfig{}, &ConfigError{Field: "preset", Msg: "unknown preset " + string(preset)}
	}

	return cfg, nil
}

// ListPresets returns every known preset with a short description, mainly
// for a CLI to print as help text.
func ListPresets() map[ConfigPreset]string {
	return map[ConfigPreset]string{
		PresetDefault:           "default knob values, no problem-specific tuning",
		PresetCombinatorialTour: "faster cooling for cheap per-move tour problems (TSP-like)",
		PresetOrderingSearch:    "slower cooling for fine-grained ordering problems (sort-like)",
	}
}
