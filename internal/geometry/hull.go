package geometry

import "sort"

// ConvexHull returns the convex hull of a point set using the monotone-chain
// algorithm.
//
// Points are sorted by (X, then Y) and the lower and upper hull chains are
// built with a cross-product turn test. The test pops on cross <= 0, meaning
// only strictly-left turns are retained: collinear boundary points are
// dropped from the hull. Callers that need every boundary sample must keep
// the original point set.
//
// For 3 or fewer input points the input is returned unchanged (as a copy).
// The hull starts at the lexicographically smallest point and is in
// counter-clockwise order in Y-up terms, which renders as clockwise when Y
// increases downward (a square comes back TL, TR, BR, BL).
// Runs in O(n log n). The input slice is not modified.
func ConvexHull(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if len(points) <= 3 {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})

	// Lower chain, left to right.
	lower := make([]Point, 0, len(out))
	for _, p := range out {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain, right to left.
	upper := make([]Point, 0, len(out))
	for i := len(out) - 1; i >= 0; i-- {
		p := out[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The last point of each chain duplicates the first point of the other.
	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// cross returns the z-component of the cross product (b-a) × (c-a).
// Positive means a->b->c is a counter-clockwise turn (in X-right, Y-up
// terms); zero means the three points are collinear.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
