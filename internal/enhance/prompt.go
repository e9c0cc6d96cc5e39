package enhance

import (
	"fmt"
	"strings"
)

// BaseInstruction is the fixed opening sentence of every enhancement prompt.
const BaseInstruction = "Enhance this image: improve overall quality and sharpness, " +
	"restore fine detail, boost vibrance naturally, and correct the lighting and contrast."

// effectClauses maps each artistic effect to its natural-language clause. Kept
// separate from the preview filter table; the two describe the same intent to
// different consumers and are allowed to diverge.
var effectClauses = map[Effect]string{
	EffectVintage:     "Apply a vintage film look with faded, warm tones.",
	EffectBW:          "Convert the image to black and white while preserving fine detail.",
	EffectSepia:       "Apply a warm sepia tone across the image.",
	EffectSketch:      "Render the image as a pencil sketch, emphasizing lines and shading.",
	EffectOilPainting: "Repaint the image in an oil-painting style with visible brush strokes.",
	EffectCartoon:     "Redraw the image in a cartoon style with bold outlines and flat colors.",
}

// BuildInstruction compiles the adjustment settings into the instruction sent
// to the generative model. The base sentence always comes first; conditional
// clauses follow in a fixed order so the output is reproducible.
func BuildInstruction(s Settings) string {
	parts := []string{BaseInstruction}
	if s.Brightness != 100 {
		parts = append(parts, fmt.Sprintf("Adjust the overall brightness to about %d%% of the original.", s.Brightness))
	}
	if s.Contrast != 100 {
		parts = append(parts, fmt.Sprintf("Adjust the contrast to about %d%% of the original.", s.Contrast))
	}
	if s.NoiseReduction > 0 {
		parts = append(parts, fmt.Sprintf("Apply noise reduction at roughly %d%% intensity.", s.NoiseReduction))
	}
	if clause, ok := effectClauses[s.Effect]; ok {
		parts = append(parts, clause)
	}
	return strings.Join(parts, " ")
}
