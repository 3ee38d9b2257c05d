package chartjs

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette returns n colors with evenly spaced hues, useful for giving every
// dataset of a chart its own color. The result is deterministic.
func Palette(n int) []Color {
	if n <= 0 {
		return nil
	}
	colors := make([]Color, n)
	for i := range colors {
		hue := 360 * float64(i) / float64(n)
		colors[i] = MustColor(colorful.Hsv(hue, 0.65, 0.9).Clamped().Hex())
	}
	return colors
}

// Translucent returns each color with the given alpha, e.g. for area fills
// that should not hide the grid.
func Translucent(colors []Color, alpha float64) ([]Color, error) {
	out := make([]Color, len(colors))
	for i, c := range colors {
		t, err := c.WithAlpha(alpha)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// Fixed rounds num to the given number of decimals, keeping emitted documents
// free of long binary fractions.
func Fixed(num float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(num*p) / p
}
