package region

import (
	"fmt"

	"github.com/ironsheep/outline-tools-mcp/internal/extraction"
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
	"github.com/ironsheep/outline-tools-mcp/internal/optimize"
)

// RegionType identifies how a region's outline was authored.
type RegionType string

const (
	// TypeFreehand is a hand-drawn outline with many closely spaced points.
	TypeFreehand RegionType = "freehand"

	// TypeRectangle is an axis-aligned box, stored as its 4 corners.
	TypeRectangle RegionType = "rectangle"

	// TypePolygon is a deliberate point-by-point outline.
	TypePolygon RegionType = "polygon"
)

// Region is an annotated area of the canvas.
type Region struct {
	// ID uniquely identifies the region within a canvas.
	ID string `json:"id"`

	// Points is the outline polygon in canvas pixel coordinates. The
	// polygon is stored open; the closing edge back to Points[0] is
	// implied.
	Points []geometry.Point `json:"points"`

	Type RegionType `json:"type"`

	// Filled selects whether the interior is painted when compositing.
	Filled bool `json:"filled"`

	// FillColor and OutlineColor are "#RRGGBB" hex strings.
	FillColor    string `json:"fill_color,omitempty"`
	OutlineColor string `json:"outline_color,omitempty"`

	// Confidence is 0-100; 100 for hand-authored regions, the scaled
	// model score for detected ones.
	Confidence float64 `json:"confidence"`

	Label string `json:"label,omitempty"`
}

// FromDetectionBox converts a detector result into a rectangle region. The
// index selects a palette color and feeds the generated ID; the model score
// (0-1) is scaled to the 0-100 confidence range.
func FromDetectionBox(box extraction.DetectionBox, index int) Region {
	label := box.Label
	if label == "" {
		label = "detection"
	}
	c := PaletteColor(index)

	return Region{
		ID:           fmt.Sprintf("det-%d", index),
		Points:       extraction.BoxPolygon(box),
		Type:         TypeRectangle,
		Filled:       true,
		FillColor:    c,
		OutlineColor: c,
		Confidence:   clampConfidence(box.Score * 100),
		Label:        label,
	}
}

// FromMaskPolygon converts an extracted mask polygon into a polygon region.
// The score (0-1) is scaled to the 0-100 confidence range; pass 1 when the
// segmenter reports no per-mask score.
func FromMaskPolygon(points []geometry.Point, index int, label string, score float64) Region {
	c := PaletteColor(index)

	return Region{
		ID:           fmt.Sprintf("seg-%d", index),
		Points:       clonePoints(points),
		Type:         TypePolygon,
		Filled:       true,
		FillColor:    c,
		OutlineColor: c,
		Confidence:   clampConfidence(score * 100),
		Label:        label,
	}
}

// ApplySuggestions returns a copy of the region with the accepted outline
// suggestions applied to its points. The original region is not modified.
func ApplySuggestions(r Region, suggestions []optimize.Suggestion, cfg optimize.Config) Region {
	out := r
	out.Points = optimize.Apply(r.Points, suggestions, cfg)
	return out
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clonePoints(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	copy(out, points)
	return out
}
