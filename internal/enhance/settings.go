package enhance

import "strings"

// Effect enumerates the artistic looks a user can pick. The set is closed;
// anything else normalizes to EffectNone.
type Effect string

const (
	EffectNone        Effect = "none"
	EffectVintage     Effect = "vintage"
	EffectBW          Effect = "bw"
	EffectSepia       Effect = "sepia"
	EffectSketch      Effect = "sketch"
	EffectOilPainting Effect = "oil-painting"
	EffectCartoon     Effect = "cartoon"
)

// Adjustment ranges. Brightness and contrast are percentages of the original;
// noise reduction is an intensity percentage.
const (
	MinBrightness = 50
	MaxBrightness = 150
	MinContrast   = 50
	MaxContrast   = 150
	MinNoise      = 0
	MaxNoise      = 100
)

// Settings holds the user-tunable adjustments for one session.
type Settings struct {
	Brightness     int    `json:"brightness"`
	Contrast       int    `json:"contrast"`
	NoiseReduction int    `json:"noise_reduction"`
	Effect         Effect `json:"artistic_effect"`
}

// DefaultSettings returns the neutral adjustment state.
func DefaultSettings() Settings {
	return Settings{Brightness: 100, Contrast: 100, NoiseReduction: 0, Effect: EffectNone}
}

// NormalizeEffect sanitizes free-form input into a supported effect.
func NormalizeEffect(v string) Effect {
	switch Effect(strings.ToLower(strings.TrimSpace(v))) {
	case EffectVintage:
		return EffectVintage
	case EffectBW:
		return EffectBW
	case EffectSepia:
		return EffectSepia
	case EffectSketch:
		return EffectSketch
	case EffectOilPainting:
		return EffectOilPainting
	case EffectCartoon:
		return EffectCartoon
	default:
		return EffectNone
	}
}

// Clamp forces every adjustment into its allowed range and the effect into the
// closed set. All writes to a session's settings go through here.
func (s Settings) Clamp() Settings {
	s.Brightness = clampInt(s.Brightness, MinBrightness, MaxBrightness)
	s.Contrast = clampInt(s.Contrast, MinContrast, MaxContrast)
	s.NoiseReduction = clampInt(s.NoiseReduction, MinNoise, MaxNoise)
	s.Effect = NormalizeEffect(string(s.Effect))
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
