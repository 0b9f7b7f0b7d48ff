package population

import (
	"github.com/lucasb-eyer/go-colorful"
)

// FoliagePalette returns n greens ramped from deep shadow to frosted tip,
// blended in Hcl space so the steps stay perceptually even.
//
// Parameters:
//   - n: the number of palette entries (minimum 1)
//
// Returns:
//   - []colorful.Color: the palette
func FoliagePalette(n int) []colorful.Color {
	if n < 1 {
		n = 1
	}
	dark := colorful.Hsv(140, 0.85, 0.25)
	light := colorful.Hsv(130, 0.55, 0.80)

	palette := make([]colorful.Color, n)
	for i := range palette {
		t := float64(0)
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		palette[i] = dark.BlendHcl(light, t).Clamped()
	}
	return palette
}

// EmberPalette returns n warm tones ramped from deep red through orange to
// near-white, matching an ember's glow gradient.
//
// Parameters:
//   - n: the number of palette entries (minimum 1)
//
// Returns:
//   - []colorful.Color: the palette
func EmberPalette(n int) []colorful.Color {
	if n < 1 {
		n = 1
	}
	cool := colorful.Hsv(8, 0.95, 0.55)
	hot := colorful.Hsv(45, 0.45, 1.0)

	palette := make([]colorful.Color, n)
	for i := range palette {
		t := float64(0)
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		palette[i] = cool.BlendHcl(hot, t).Clamped()
	}
	return palette
}

// OrnamentPalette returns n saturated hues spaced evenly around the color
// wheel for bauble variety.
//
// Parameters:
//   - n: the number of palette entries (minimum 1)
//
// Returns:
//   - []colorful.Color: the palette
func OrnamentPalette(n int) []colorful.Color {
	if n < 1 {
		n = 1
	}
	palette := make([]colorful.Color, n)
	for i := range palette {
		hue := 360.0 * float64(i) / float64(n)
		palette[i] = colorful.Hsv(hue, 0.8, 0.9)
	}
	return palette
}
