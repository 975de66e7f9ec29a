package extraction

import (
	"context"
	"sort"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// DetectionBox is a rectangular detection from an object-detection model, in
// canvas pixel coordinates.
type DetectionBox struct {
	XMin  float64 `json:"x_min"`
	YMin  float64 `json:"y_min"`
	XMax  float64 `json:"x_max"`
	YMax  float64 `json:"y_max"`
	Label string  `json:"label,omitempty"`

	// Score is the model confidence in [0, 1].
	Score float64 `json:"score"`
}

// Rect returns the box as a geometry rectangle.
func (b DetectionBox) Rect() geometry.Rect {
	return geometry.Rect{MinX: b.XMin, MinY: b.YMin, MaxX: b.XMax, MaxY: b.YMax}
}

// BoxPolygon converts a detection box into a 4-point polygon, clockwise from
// the top-left corner: TL, TR, BR, BL.
func BoxPolygon(b DetectionBox) []geometry.Point {
	return []geometry.Point{
		{X: b.XMin, Y: b.YMin},
		{X: b.XMax, Y: b.YMin},
		{X: b.XMax, Y: b.YMax},
		{X: b.XMin, Y: b.YMax},
	}
}

// ScalePoints applies the same affine transform to every point: scale first,
// then offset. Used to map model-resolution coordinates onto the canvas.
// Returns a new slice; the input is not modified.
func ScalePoints(points []geometry.Point, scaleX, scaleY, offsetX, offsetY float64) []geometry.Point {
	out := make([]geometry.Point, len(points))
	for i, p := range points {
		out[i] = geometry.Point{
			X: p.X*scaleX + offsetX,
			Y: p.Y*scaleY + offsetY,
		}
	}
	return out
}

// FilterDuplicateBoxes drops boxes whose intersection-over-union with an
// earlier kept box exceeds iouThreshold, then caps the result count. The
// first candidate wins, so callers should order by preference. A maxResults
// of 0 or less means no cap.
func FilterDuplicateBoxes(boxes []DetectionBox, iouThreshold float64, maxResults int) []DetectionBox {
	kept := make([]DetectionBox, 0, len(boxes))

	for _, box := range boxes {
		duplicate := false
		for _, existing := range kept {
			if geometry.IoU(box.Rect(), existing.Rect()) > iouThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, box)
		if maxResults > 0 && len(kept) >= maxResults {
			break
		}
	}
	return kept
}

// Detector locates objects in an image identified by reference (a path, URL,
// or opaque handle understood by the implementation). Implementations wrap
// external model backends; this package only consumes their output.
type Detector interface {
	Detect(ctx context.Context, imageRef string, labels []string) ([]DetectionBox, error)
}

// Segmenter produces a foreground mask for the object at a point of
// interest.
type Segmenter interface {
	Segment(ctx context.Context, imageRef string, x, y float64) (Mask, error)
}

const (
	// defaultDuplicateIoU is the bounding-box overlap above which two
	// candidates count as the same object.
	defaultDuplicateIoU = 0.7

	// defaultMaxRegions caps how many polygons a probe sweep returns.
	defaultMaxRegions = 20
)

// GridProber discovers regions by probing a segmenter at evenly spaced grid
// points and deduplicating the resulting polygons.
type GridProber struct {
	Segmenter Segmenter

	// Options tune the per-probe mask extraction. Zero fields fall back to
	// DefaultOptions.
	Options Options

	// GridCols and GridRows set the probe density. Zero means 3×3.
	GridCols int
	GridRows int

	// DuplicateIoU and MaxRegions override the dedup threshold (0.7) and
	// result cap (20) when positive.
	DuplicateIoU float64
	MaxRegions   int
}

// ProbeAll segments the image at every grid point, extracts a polygon from
// each returned mask, and deduplicates the candidates.
//
// Probes are ordered row-major and larger polygons win ties within a probe,
// so the dedup pass keeps the first (largest-area) polygon for each covered
// object. Individual probe failures are skipped: one bad model response
// should not sink the sweep. The only returned error is context
// cancellation.
func (g *GridProber) ProbeAll(ctx context.Context, imageRef string, width, height float64) ([][]geometry.Point, error) {
	cols, rows := g.GridCols, g.GridRows
	if cols <= 0 {
		cols = 3
	}
	if rows <= 0 {
		rows = 3
	}

	var candidates [][]geometry.Point
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			// Probe at cell centers so a 1×1 grid hits the image center.
			px := (float64(col) + 0.5) / float64(cols) * width
			py := (float64(row) + 0.5) / float64(rows) * height

			mask, err := g.Segmenter.Segment(ctx, imageRef, px, py)
			if err != nil {
				continue
			}

			polygon := ExtractPolygon(mask, g.Options)
			if polygon == nil {
				continue
			}
			candidates = append(candidates, polygon)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return geometry.PolygonArea(candidates[i]) > geometry.PolygonArea(candidates[j])
	})

	iou := g.DuplicateIoU
	if iou <= 0 {
		iou = defaultDuplicateIoU
	}
	max := g.MaxRegions
	if max <= 0 {
		max = defaultMaxRegions
	}
	return FilterDuplicatePolygons(candidates, iou, max), nil
}
