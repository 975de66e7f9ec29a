package region

import (
	"testing"

	"github.com/ironsheep/outline-tools-mcp/internal/extraction"
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
	"github.com/ironsheep/outline-tools-mcp/internal/optimize"
)

func TestFromDetectionBox(t *testing.T) {
	box := extraction.DetectionBox{
		XMin: 10, YMin: 20, XMax: 50, YMax: 60,
		Label: "dog",
		Score: 0.87,
	}

	r := FromDetectionBox(box, 3)

	if r.Type != TypeRectangle {
		t.Errorf("Type = %q, want %q", r.Type, TypeRectangle)
	}
	if len(r.Points) != 4 {
		t.Fatalf("Points has %d entries, want 4", len(r.Points))
	}
	if r.Points[0] != (geometry.Point{X: 10, Y: 20}) {
		t.Errorf("first corner = %v, want top-left (10, 20)", r.Points[0])
	}
	if r.Confidence != 87 {
		t.Errorf("Confidence = %v, want 87", r.Confidence)
	}
	if r.Label != "dog" {
		t.Errorf("Label = %q, want %q", r.Label, "dog")
	}
	if r.FillColor == "" || r.OutlineColor == "" {
		t.Error("palette colors not assigned")
	}
}

func TestFromDetectionBox_DefaultLabel(t *testing.T) {
	r := FromDetectionBox(extraction.DetectionBox{XMax: 1, YMax: 1, Score: 2.0}, 0)
	if r.Label != "detection" {
		t.Errorf("Label = %q, want %q", r.Label, "detection")
	}
	if r.Confidence != 100 {
		t.Errorf("Confidence = %v, want clamped to 100", r.Confidence)
	}
}

func TestFromMaskPolygon(t *testing.T) {
	points := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	r := FromMaskPolygon(points, 1, "cat", 0.5)

	if r.Type != TypePolygon {
		t.Errorf("Type = %q, want %q", r.Type, TypePolygon)
	}
	if r.Confidence != 50 {
		t.Errorf("Confidence = %v, want 50", r.Confidence)
	}

	// The region must own its points.
	points[0].X = 99
	if r.Points[0].X == 99 {
		t.Error("FromMaskPolygon shares the caller's point slice")
	}
}

func TestApplySuggestionsReturnsCopy(t *testing.T) {
	original := Region{
		ID:   "r1",
		Type: TypeFreehand,
		Points: []geometry.Point{
			{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}, {X: 40, Y: 0},
		},
		Confidence: 100,
	}
	before := make([]geometry.Point, len(original.Points))
	copy(before, original.Points)

	suggestions := []optimize.Suggestion{
		{Kind: optimize.KindSmoothing, Confidence: 80},
	}
	updated := ApplySuggestions(original, suggestions, optimize.DefaultConfig())

	if updated.ID != original.ID || updated.Type != original.Type {
		t.Error("ApplySuggestions changed non-geometry fields")
	}
	for i, p := range original.Points {
		if p != before[i] {
			t.Fatal("ApplySuggestions modified the original region's points")
		}
	}
	if len(updated.Points) < 2 {
		t.Errorf("updated region has %d points, want at least 2", len(updated.Points))
	}
}
