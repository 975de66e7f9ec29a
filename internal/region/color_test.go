package region

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"red", "#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"mixed", "#336699", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}, false},
		{"uppercase", "#00FF00", color.NRGBA{G: 255, A: 255}, false},
		{"missing hash", "336699", color.NRGBA{}, true},
		{"garbage", "#zzzzzz", color.NRGBA{}, true},
		{"empty", "", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlendLab(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		if got, err := BlendLab("#ff0000", "#0000ff", 0); err != nil || got != "#ff0000" {
			t.Errorf("BlendLab(t=0) = %q, %v; want #ff0000", got, err)
		}
		if got, err := BlendLab("#ff0000", "#0000ff", 1); err != nil || got != "#0000ff" {
			t.Errorf("BlendLab(t=1) = %q, %v; want #0000ff", got, err)
		}
	})

	t.Run("midpoint differs from both endpoints", func(t *testing.T) {
		got, err := BlendLab("#ff0000", "#0000ff", 0.5)
		if err != nil {
			t.Fatalf("BlendLab returned error: %v", err)
		}
		if got == "#ff0000" || got == "#0000ff" {
			t.Errorf("BlendLab(t=0.5) = %q, want an intermediate color", got)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		if _, err := BlendLab("nope", "#0000ff", 0.5); err == nil {
			t.Error("BlendLab accepted an invalid color")
		}
	})
}

func TestPaletteColor(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		if PaletteColor(4) != PaletteColor(4) {
			t.Error("PaletteColor is not deterministic")
		}
	})

	t.Run("neighbors differ", func(t *testing.T) {
		for i := 0; i < paletteSize-1; i++ {
			if PaletteColor(i) == PaletteColor(i+1) {
				t.Errorf("PaletteColor(%d) == PaletteColor(%d)", i, i+1)
			}
		}
	})

	t.Run("wraps after palette size", func(t *testing.T) {
		if PaletteColor(0) != PaletteColor(paletteSize) {
			t.Errorf("PaletteColor(0) = %q, PaletteColor(%d) = %q, want equal",
				PaletteColor(0), paletteSize, PaletteColor(paletteSize))
		}
	})

	t.Run("parses back", func(t *testing.T) {
		for _, hex := range Palette(paletteSize) {
			if _, err := ParseHexColor(hex); err != nil {
				t.Errorf("palette color %q does not parse: %v", hex, err)
			}
		}
	})
}
