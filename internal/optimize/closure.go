package optimize

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// AutoClose snaps a nearly-closed path shut.
//
// Parameters:
//   - path: The path to close. Not modified.
//   - threshold: Maximum gap, in pixels, between the first and last point
//     for closure to apply.
//
// If the distance between the first and last point is greater than 0 and at
// most threshold, the last point is replaced by a copy of the first point so
// the shape closes exactly. If the path is already closed (gap of 0) or the
// gap exceeds the threshold, the path is returned unchanged. Paths with
// fewer than 3 points are returned unchanged.
//
// AutoClose is idempotent: closing an already-closed path is a no-op.
func AutoClose(path []geometry.Point, threshold float64) []geometry.Point {
	out := make([]geometry.Point, len(path))
	copy(out, path)
	if len(path) < 3 {
		return out
	}

	gap := geometry.Distance(path[0], path[len(path)-1])
	if gap == 0 || gap > threshold {
		return out
	}

	out[len(out)-1] = path[0]
	return out
}

// AutoCloseSeamed closes a nearly-closed path like AutoClose, but first
// inserts a single midpoint between the old last point and the first point
// so the closing seam bends in two shorter steps instead of one jump.
//
// The closure condition is identical to AutoClose. When the path is already
// closed or the gap exceeds the threshold, the path is returned unchanged
// and no midpoint is inserted.
func AutoCloseSeamed(path []geometry.Point, threshold float64) []geometry.Point {
	if len(path) < 3 {
		out := make([]geometry.Point, len(path))
		copy(out, path)
		return out
	}

	first := path[0]
	last := path[len(path)-1]
	gap := geometry.Distance(first, last)
	if gap == 0 || gap > threshold {
		out := make([]geometry.Point, len(path))
		copy(out, path)
		return out
	}

	out := make([]geometry.Point, 0, len(path)+2)
	out = append(out, path...)
	out = append(out, geometry.Point{X: (last.X + first.X) / 2, Y: (last.Y + first.Y) / 2})
	out = append(out, first)
	return out
}

// ClosureGap returns the distance between the first and last point of the
// path, or 0 for paths with fewer than 2 points.
func ClosureGap(path []geometry.Point) float64 {
	if len(path) < 2 {
		return 0
	}
	return geometry.Distance(path[0], path[len(path)-1])
}
