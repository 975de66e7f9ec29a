package region

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// paletteSize is the number of distinct hues before palette colors repeat.
const paletteSize = 12

// ParseHexColor parses a "#RRGGBB" (or short "#RGB") hex string into an
// opaque NRGBA color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// BlendLab blends two hex colors in the Lab color space, which keeps the
// midpoints perceptually between the endpoints instead of washing through
// gray. t=0 returns a, t=1 returns b.
func BlendLab(a, b string, t float64) (string, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", b, err)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ca.BlendLab(cb, t).Clamped().Hex(), nil
}

// PaletteColor returns a deterministic hex color for an index. Indices walk
// the hue wheel in even steps so neighboring regions get visually distinct
// colors, repeating after paletteSize entries.
func PaletteColor(index int) string {
	if index < 0 {
		index = -index
	}
	hue := float64(index%paletteSize) * (360.0 / paletteSize)
	return colorful.Hsv(hue, 0.65, 0.95).Hex()
}

// Palette returns the first n palette colors.
func Palette(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = PaletteColor(i)
	}
	return colors
}
