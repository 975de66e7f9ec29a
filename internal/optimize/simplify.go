package optimize

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// Simplify reduces the point count of a path using the Ramer–Douglas–Peucker
// algorithm.
//
// Parameters:
//   - path: The path to simplify. Not modified.
//   - epsilon: Maximum allowed perpendicular deviation, in pixels, between
//     the simplified path and the original. Larger values remove more points.
//     Typical: 1-5 for hand-drawn outlines.
//
// Returns a new path containing a subset of the input points. The first and
// last points are always retained. Paths with fewer than 3 points are
// returned unchanged (as a copy). Negative epsilon is treated as 0.
//
// # Algorithm
//
// For each sub-range, the point with maximum segment-clamped perpendicular
// distance from the chord joining the range endpoints is found (ties go to
// the first such point, scanning left to right). If that distance exceeds
// epsilon the range is split at the point and both halves are processed;
// otherwise every interior point of the range is dropped.
//
// The implementation uses an explicit stack instead of recursion so that
// very long freehand strokes cannot exhaust the call stack. The output is
// identical to the textbook recursive formulation.
func Simplify(path []geometry.Point, epsilon float64) []geometry.Point {
	out := make([]geometry.Point, 0, len(path))
	if len(path) < 3 {
		return append(out, path...)
	}
	if epsilon < 0 {
		epsilon = 0
	}

	keep := make([]bool, len(path))
	keep[0] = true
	keep[len(path)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(path) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := 0.0
		maxIndex := -1
		a, b := path[s.first], path[s.last]
		for i := s.first + 1; i < s.last; i++ {
			d := geometry.PointSegmentDistance(path[i], a, b)
			if d > maxDist {
				maxDist = d
				maxIndex = i
			}
		}

		if maxIndex >= 0 && maxDist > epsilon {
			keep[maxIndex] = true
			stack = append(stack, span{s.first, maxIndex}, span{maxIndex, s.last})
		}
	}

	for i, k := range keep {
		if k {
			out = append(out, path[i])
		}
	}
	return out
}

// SimplifyAdaptive simplifies a path and, if the result does not shrink
// enough to be visibly simpler, retries with a progressively larger epsilon.
//
// Parameters:
//   - path: The path to simplify. Not modified.
//   - epsilon: Starting tolerance in pixels.
//   - maxRetainedFraction: Retry trigger. If the simplified path still holds
//     more than this fraction of the original points (e.g. 0.65), the
//     tolerance is multiplied by 1.5 and simplification runs again.
//
// At most 3 retries are attempted; the last result is returned even when it
// still exceeds the retained fraction. This is a caller-level policy layered
// on top of Simplify; the core algorithm itself never retries.
func SimplifyAdaptive(path []geometry.Point, epsilon, maxRetainedFraction float64) []geometry.Point {
	result := Simplify(path, epsilon)
	if len(path) == 0 {
		return result
	}

	for retry := 0; retry < 3; retry++ {
		retained := float64(len(result)) / float64(len(path))
		if retained <= maxRetainedFraction {
			break
		}
		epsilon *= 1.5
		result = Simplify(path, epsilon)
	}
	return result
}
