package region

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// decodeResult decodes a CompositeResult back into an image for pixel
// assertions.
func decodeResult(t *testing.T, res *CompositeResult) image.Image {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}
	return img
}

func squareRegion(x0, y0, x1, y1 float64) Region {
	return Region{
		ID:     "r1",
		Type:   TypeRectangle,
		Filled: true,
		Points: []geometry.Point{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		},
		FillColor:    "#ff0000",
		OutlineColor: "#ff0000",
		Confidence:   100,
	}
}

func TestComposite(t *testing.T) {
	base, err := BlankCanvas(40, 40, "#000000")
	if err != nil {
		t.Fatalf("BlankCanvas returned error: %v", err)
	}

	res, err := Composite(base, []Region{squareRegion(10, 10, 30, 30)}, CompositeOptions{})
	if err != nil {
		t.Fatalf("Composite returned error: %v", err)
	}

	if res.Format != "png" {
		t.Errorf("Format = %q, want png", res.Format)
	}
	if res.Width != 40 || res.Height != 40 {
		t.Errorf("size = %dx%d, want 40x40", res.Width, res.Height)
	}
	if res.RegionCount != 1 {
		t.Errorf("RegionCount = %d, want 1", res.RegionCount)
	}

	img := decodeResult(t, res)

	// Interior pixel picked up red from the translucent fill.
	r, _, _, _ := img.At(20, 20).RGBA()
	if r == 0 {
		t.Error("interior pixel has no red component, fill was not painted")
	}

	// A pixel well outside the region stayed black.
	r, g, b, _ := img.At(2, 2).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("outside pixel = (%d, %d, %d), want untouched black", r, g, b)
	}

	// The outline is drawn at full opacity, so an edge pixel is more red
	// than an interior fill pixel.
	edgeR, _, _, _ := img.At(10, 20).RGBA()
	interiorR, _, _, _ := img.At(20, 20).RGBA()
	if edgeR <= interiorR {
		t.Errorf("edge red %d <= interior red %d, outline not stroked", edgeR, interiorR)
	}
}

func TestComposite_SkipsDegenerateRegions(t *testing.T) {
	base, _ := BlankCanvas(10, 10, "#ffffff")

	regions := []Region{
		{ID: "line", Points: []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, FillColor: "#ff0000", Filled: true},
	}

	res, err := Composite(base, regions, CompositeOptions{})
	if err != nil {
		t.Fatalf("Composite returned error: %v", err)
	}
	if res.RegionCount != 0 {
		t.Errorf("RegionCount = %d, want 0 for a 2-point region", res.RegionCount)
	}
}

func TestComposite_UnparseableColorsNotCounted(t *testing.T) {
	base, _ := BlankCanvas(40, 40, "#000000")

	bad := squareRegion(2, 2, 8, 8)
	bad.FillColor = "not-a-color"
	bad.OutlineColor = ""

	res, err := Composite(base, []Region{bad, squareRegion(10, 10, 30, 30)}, CompositeOptions{})
	if err != nil {
		t.Fatalf("Composite returned error: %v", err)
	}
	if res.RegionCount != 1 {
		t.Errorf("RegionCount = %d, want 1 (unpainted region must not count)", res.RegionCount)
	}

	// Nothing was painted where the bad region sits.
	img := decodeResult(t, res)
	r, g, b, _ := img.At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel under the skipped region = (%d, %d, %d), want untouched black", r, g, b)
	}
}

func TestComposite_Resizes(t *testing.T) {
	base, _ := BlankCanvas(40, 40, "#ffffff")

	res, err := Composite(base, nil, CompositeOptions{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("Composite returned error: %v", err)
	}
	if res.Width != 20 || res.Height != 20 {
		t.Errorf("size = %dx%d, want 20x20", res.Width, res.Height)
	}
}

func TestComposite_NilBase(t *testing.T) {
	if _, err := Composite(nil, nil, CompositeOptions{}); err == nil {
		t.Error("Composite accepted a nil base canvas")
	}
}

func TestBlankCanvas_InvalidInputs(t *testing.T) {
	if _, err := BlankCanvas(0, 10, "#ffffff"); err == nil {
		t.Error("BlankCanvas accepted zero width")
	}
	if _, err := BlankCanvas(10, 10, "not-a-color"); err == nil {
		t.Error("BlankCanvas accepted an invalid color")
	}
}
