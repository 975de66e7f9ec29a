package optimize

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// Smooth reduces jaggedness by blending each interior point toward a local
// weighted average of its neighborhood.
//
// Parameters:
//   - path: The path to smooth. Not modified.
//   - intensity: Blend fraction in [0, 1]. 0 returns the path unchanged,
//     1 moves each interior point fully onto the neighborhood average.
//     Values outside [0, 1] are clamped.
//
// For each interior point the average of {prev, curr×2, next} is computed
// and the point is moved toward it: result = curr + (avg - curr) × intensity.
// The first and last points are anchors and never move, so endpoints survive
// any intensity. Paths with fewer than 4 points are returned unchanged.
//
// This is a deliberately simple low-pass filter rather than a true spline:
// it never inserts points, so point count is preserved. Use CatmullRom when
// interpolated density is wanted.
func Smooth(path []geometry.Point, intensity float64) []geometry.Point {
	return smoothTaps(path, intensity, false)
}

// SmoothWide is the 4-tap variant of Smooth: the neighborhood average also
// includes the point after next, pulling the result further along the
// stroke direction. Contracts are identical to Smooth.
func SmoothWide(path []geometry.Point, intensity float64) []geometry.Point {
	return smoothTaps(path, intensity, true)
}

func smoothTaps(path []geometry.Point, intensity float64, lookAhead bool) []geometry.Point {
	out := make([]geometry.Point, len(path))
	copy(out, path)
	if len(path) < 4 {
		return out
	}

	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	for i := 1; i < len(path)-1; i++ {
		prev := path[i-1]
		curr := path[i]
		next := path[i+1]

		sumX := prev.X + curr.X*2 + next.X
		sumY := prev.Y + curr.Y*2 + next.Y
		taps := 4.0

		if lookAhead && i+2 < len(path) {
			sumX += path[i+2].X
			sumY += path[i+2].Y
			taps = 5.0
		}

		avgX := sumX / taps
		avgY := sumY / taps

		out[i] = geometry.Point{
			X: curr.X + (avgX-curr.X)*intensity,
			Y: curr.Y + (avgY-curr.Y)*intensity,
		}
	}
	return out
}

// CatmullRom reshapes a path by interpolating a Catmull-Rom spline through
// its points, inserting new points at fractional steps between each pair of
// original points.
//
// Parameters:
//   - path: The control path. Not modified.
//   - tension: Tangent scale in [0, 1]. 0 produces straight segments
//     (interpolation degenerates to the original polyline); 1 is the
//     standard Catmull-Rom tangent. Values outside [0, 1] are clamped.
//   - segments: Number of interpolated steps per input segment. Values
//     below 1 are treated as 1 (no insertion).
//
// Endpoints are duplicated as phantom control points, so the curve passes
// through every original point including the first and last. Paths with
// fewer than 4 points are returned unchanged.
func CatmullRom(path []geometry.Point, tension float64, segments int) []geometry.Point {
	if len(path) < 4 {
		out := make([]geometry.Point, len(path))
		copy(out, path)
		return out
	}

	if tension < 0 {
		tension = 0
	}
	if tension > 1 {
		tension = 1
	}
	if segments < 1 {
		segments = 1
	}

	out := make([]geometry.Point, 0, (len(path)-1)*segments+1)
	out = append(out, path[0])

	for i := 0; i < len(path)-1; i++ {
		p0 := path[clampIndex(i-1, len(path))]
		p1 := path[i]
		p2 := path[i+1]
		p3 := path[clampIndex(i+2, len(path))]

		// Tangents scaled by tension/2 per the centripetal-free
		// uniform Catmull-Rom formulation.
		m1x := tension * (p2.X - p0.X) / 2
		m1y := tension * (p2.Y - p0.Y) / 2
		m2x := tension * (p3.X - p1.X) / 2
		m2y := tension * (p3.Y - p1.Y) / 2

		for step := 1; step <= segments; step++ {
			t := float64(step) / float64(segments)
			t2 := t * t
			t3 := t2 * t

			h00 := 2*t3 - 3*t2 + 1
			h10 := t3 - 2*t2 + t
			h01 := -2*t3 + 3*t2
			h11 := t3 - t2

			out = append(out, geometry.Point{
				X: h00*p1.X + h10*m1x + h01*p2.X + h11*m2x,
				Y: h00*p1.Y + h10*m1y + h01*p2.Y + h11*m2y,
			})
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
