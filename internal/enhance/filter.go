package enhance

import (
	"fmt"
	"strings"
)

// FilterOp is one named visual operation with a percent magnitude.
type FilterOp struct {
	Name string `json:"name"`
	Pct  int    `json:"pct"`
}

// FilterChain is an ordered sequence of operations applied left to right to the
// original image for on-screen preview. It is never sent to the provider and is
// never applied to an enhanced result.
type FilterChain []FilterOp

// String renders the chain in CSS filter syntax.
func (f FilterChain) String() string {
	parts := make([]string, len(f))
	for i, op := range f {
		parts[i] = fmt.Sprintf("%s(%d%%)", op.Name, op.Pct)
	}
	return strings.Join(parts, " ")
}

// effectFilterOps maps each artistic effect to its fixed preview suffix. This
// table intentionally stays separate from the prompt clauses in prompt.go: the
// preview approximates the instruction, it does not reproduce it.
var effectFilterOps = map[Effect][]FilterOp{
	EffectVintage:     {{Name: "sepia", Pct: 60}},
	EffectBW:          {{Name: "grayscale", Pct: 100}},
	EffectSepia:       {{Name: "sepia", Pct: 100}},
	EffectSketch:      {{Name: "grayscale", Pct: 100}, {Name: "contrast", Pct: 150}, {Name: "brightness", Pct: 110}},
	EffectOilPainting: {{Name: "saturate", Pct: 180}, {Name: "contrast", Pct: 130}},
	EffectCartoon:     {{Name: "saturate", Pct: 200}, {Name: "contrast", Pct: 150}},
}

// BuildPreviewFilter compiles the adjustment settings into the preview filter
// chain: brightness and contrast first, then the effect-specific suffix. Pure
// and cheap enough to recompute on every slider tick.
func BuildPreviewFilter(s Settings) FilterChain {
	chain := FilterChain{
		{Name: "brightness", Pct: s.Brightness},
		{Name: "contrast", Pct: s.Contrast},
	}
	return append(chain, effectFilterOps[s.Effect]...)
}
