package enhance

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Brightness != 100 || s.Contrast != 100 || s.NoiseReduction != 0 || s.Effect != EffectNone {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestClampRanges(t *testing.T) {
	s := Settings{Brightness: 10, Contrast: 900, NoiseReduction: -5, Effect: "glitch"}.Clamp()
	if s.Brightness != MinBrightness {
		t.Fatalf("brightness not clamped: %d", s.Brightness)
	}
	if s.Contrast != MaxContrast {
		t.Fatalf("contrast not clamped: %d", s.Contrast)
	}
	if s.NoiseReduction != MinNoise {
		t.Fatalf("noise not clamped: %d", s.NoiseReduction)
	}
	if s.Effect != EffectNone {
		t.Fatalf("unknown effect not normalized: %s", s.Effect)
	}
}

func TestNormalizeEffect(t *testing.T) {
	cases := map[string]Effect{
		"vintage":      EffectVintage,
		" BW ":         EffectBW,
		"sepia":        EffectSepia,
		"sketch":       EffectSketch,
		"Oil-Painting": EffectOilPainting,
		"cartoon":      EffectCartoon,
		"none":         EffectNone,
		"":             EffectNone,
		"watercolor":   EffectNone,
	}
	for in, want := range cases {
		if got := NormalizeEffect(in); got != want {
			t.Fatalf("NormalizeEffect(%q) = %s, want %s", in, got, want)
		}
	}
}
