package extraction

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// Strategy selects the mask-to-polygon algorithm.
type Strategy string

const (
	// StrategyContour traces component borders and keeps the largest
	// contour. Preserves concave outlines. This is the default.
	StrategyContour Strategy = "contour"

	// StrategyHull samples boundary pixels and takes their convex hull.
	// Faster, but concavities are lost.
	StrategyHull Strategy = "hull"
)

// Options control mask-to-polygon extraction.
type Options struct {
	// Strategy picks the extraction algorithm. Empty means StrategyContour.
	Strategy Strategy `json:"strategy,omitempty"`

	// Threshold is the minimum score for a pixel to count as foreground.
	Threshold float64 `json:"threshold"`

	// MinAreaPixels rejects polygons whose enclosed area is below this,
	// filtering model noise. Measured at the target resolution.
	MinAreaPixels float64 `json:"min_area_pixels"`

	// Stride is the sampling step for the hull strategy. Larger strides
	// scan faster at the cost of boundary precision.
	Stride int `json:"stride"`

	// MinBoundaryPixels rejects hull extraction when fewer boundary
	// samples than this are found.
	MinBoundaryPixels int `json:"min_boundary_pixels"`

	// SimplifyTolerance is the RDP tolerance, in pixels, applied to traced
	// contours.
	SimplifyTolerance float64 `json:"simplify_tolerance"`

	// TargetWidth and TargetHeight, when positive, resample the mask to
	// this resolution before extraction so the polygon comes back in
	// canvas coordinates. Zero keeps the mask resolution.
	TargetWidth  int `json:"target_width,omitempty"`
	TargetHeight int `json:"target_height,omitempty"`
}

// DefaultOptions returns the extraction tuning used by the server tools.
func DefaultOptions() Options {
	return Options{
		Strategy:          StrategyContour,
		Threshold:         0.5,
		MinAreaPixels:     64,
		Stride:            2,
		MinBoundaryPixels: 10,
		SimplifyTolerance: 2,
	}
}

// normalized fills zero-valued fields with their defaults so partially
// populated Options (e.g. unmarshaled from JSON) behave sensibly.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Strategy == "" {
		o.Strategy = def.Strategy
	}
	if o.Threshold <= 0 {
		o.Threshold = def.Threshold
	}
	if o.MinAreaPixels <= 0 {
		o.MinAreaPixels = def.MinAreaPixels
	}
	if o.Stride <= 0 {
		o.Stride = def.Stride
	}
	if o.MinBoundaryPixels <= 0 {
		o.MinBoundaryPixels = def.MinBoundaryPixels
	}
	if o.SimplifyTolerance <= 0 {
		o.SimplifyTolerance = def.SimplifyTolerance
	}
	return o
}

// ExtractPolygon converts a mask into a boundary polygon.
//
// The mask is resampled to the target resolution when one is set, then the
// selected strategy runs. Returns a polygon with at least 3 points, or nil
// when no region qualifies (too few foreground pixels, or an enclosed area
// below MinAreaPixels). A nil result is an expected outcome for background
// masks, not an error.
//
// A mask whose data length disagrees with its declared dimensions is
// reshaped with the NewMask fallback first, so struct-literal masks from
// external backends behave the same as constructed ones.
func ExtractPolygon(mask Mask, opts Options) []geometry.Point {
	opts = opts.normalized()
	mask = mask.reshaped()
	if mask.IsEmpty() {
		return nil
	}

	if opts.TargetWidth > 0 && opts.TargetHeight > 0 {
		mask = mask.Resample(opts.TargetWidth, opts.TargetHeight)
	}

	switch opts.Strategy {
	case StrategyHull:
		return ExtractHullPolygon(mask, opts)
	default:
		return ExtractContourPolygon(mask, opts)
	}
}

// FilterDuplicatePolygons drops polygons that cover the same region as an
// earlier candidate, then caps the result count.
//
// Two polygons count as duplicates when the intersection-over-union of
// their axis-aligned bounding boxes exceeds iouThreshold; the first
// candidate wins, so callers should order by preference (e.g. confidence or
// probe order). A maxResults of 0 or less means no cap.
func FilterDuplicatePolygons(polygons [][]geometry.Point, iouThreshold float64, maxResults int) [][]geometry.Point {
	kept := make([][]geometry.Point, 0, len(polygons))
	rects := make([]geometry.Rect, 0, len(polygons))

	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		r := geometry.BoundingRect(poly)

		duplicate := false
		for _, existing := range rects {
			if geometry.IoU(r, existing) > iouThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, poly)
		rects = append(rects, r)
		if maxResults > 0 && len(kept) >= maxResults {
			break
		}
	}
	return kept
}
