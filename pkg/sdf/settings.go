package sdf

// Settings are the user-tunable parameters that control ray marching
type Settings struct {
	MaxSteps          int     `json:"max_steps,omitempty"`           // hard cap on sphere-tracing steps
	HitEpsilon        float64 `json:"hit_epsilon,omitempty"`         // distance threshold that counts as a hit
	NormalEpsilon     float64 `json:"normal_epsilon,omitempty"`      // sample offset for gradient estimation
	StepClamp         float64 `json:"step_clamp,omitempty"`          // fraction of the raw step, guards overshooting
	MaxTravelDistance float64 `json:"max_travel_distance,omitempty"` // cap on distance marched along the ray
}

// DefaultSettings returns the marching parameters used when a scene or
// object does not override them
func DefaultSettings() Settings {
	return Settings{
		MaxSteps:          128,
		HitEpsilon:        1e-4,
		NormalEpsilon:     5e-4,
		StepClamp:         0.95,
		MaxTravelDistance: 1e5,
	}
}

// Sanitized clamps each field to its valid range, falling back to the
// defaults for unset values
func (s Settings) Sanitized() Settings {
	defaults := DefaultSettings()
	if s.MaxSteps < 1 {
		s.MaxSteps = defaults.MaxSteps
	}
	if s.HitEpsilon <= 0 {
		s.HitEpsilon = defaults.HitEpsilon
	} else if s.HitEpsilon < 1e-8 {
		s.HitEpsilon = 1e-8
	}
	if s.NormalEpsilon <= 0 {
		s.NormalEpsilon = defaults.NormalEpsilon
	} else if s.NormalEpsilon < 1e-8 {
		s.NormalEpsilon = 1e-8
	}
	if s.StepClamp <= 0 {
		s.StepClamp = defaults.StepClamp
	} else if s.StepClamp < 1e-3 {
		s.StepClamp = 1e-3
	} else if s.StepClamp > 1 {
		s.StepClamp = 1
	}
	if s.MaxTravelDistance <= 0 {
		s.MaxTravelDistance = defaults.MaxTravelDistance
	}
	return s
}
