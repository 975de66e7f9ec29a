package extraction

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// ExtractHullPolygon implements the boundary-sampling strategy: collect
// foreground pixels that touch the background (or the mask edge) on a
// sampling stride, then take their convex hull.
//
// Rejection rules:
//   - fewer than MinBoundaryPixels boundary samples found
//   - hull area below MinAreaPixels
//
// Both return nil rather than an error; they are the normal outcome for
// background or noise masks.
func ExtractHullPolygon(mask Mask, opts Options) []geometry.Point {
	opts = opts.normalized()
	mask = mask.reshaped()
	if mask.IsEmpty() {
		return nil
	}

	xs := strideIndices(mask.Width, opts.Stride)
	ys := strideIndices(mask.Height, opts.Stride)

	var boundary []geometry.Point
	for _, y := range ys {
		for _, x := range xs {
			if mask.At(x, y) < opts.Threshold {
				continue
			}
			if isBoundaryPixel(mask, x, y, opts.Threshold) {
				boundary = append(boundary, geometry.Point{X: float64(x), Y: float64(y)})
			}
		}
	}

	if len(boundary) < opts.MinBoundaryPixels {
		return nil
	}

	hull := geometry.ConvexHull(boundary)
	if len(hull) < 3 || geometry.PolygonArea(hull) < opts.MinAreaPixels {
		return nil
	}
	return hull
}

// isBoundaryPixel reports whether the foreground pixel at (x, y) has any
// 4-connected neighbor below the threshold. Mask.At treats out-of-bounds as
// 0, so pixels on the mask edge are boundary pixels.
func isBoundaryPixel(mask Mask, x, y int, threshold float64) bool {
	return mask.At(x+1, y) < threshold ||
		mask.At(x-1, y) < threshold ||
		mask.At(x, y+1) < threshold ||
		mask.At(x, y-1) < threshold
}

// strideIndices returns 0, stride, 2×stride, ... plus the final index, so a
// stride larger than 1 still samples the far edge of the mask.
func strideIndices(dim, stride int) []int {
	if dim <= 0 {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	indices := make([]int, 0, dim/stride+2)
	for i := 0; i < dim; i += stride {
		indices = append(indices, i)
	}
	if last := dim - 1; indices[len(indices)-1] != last {
		indices = append(indices, last)
	}
	return indices
}
