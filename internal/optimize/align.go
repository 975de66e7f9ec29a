package optimize

import (
	"math"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// DefaultSnapAngles is the canonical angle set used by alignment: the four
// axis directions and four diagonals, in degrees.
func DefaultSnapAngles() []float64 {
	return []float64{0, 45, 90, 135, 180, 225, 270, 315}
}

// minAlignSegmentLength is the minimum segment length, in pixels, for
// angle re-projection to apply. Shorter segments carry too little direction
// information to snap meaningfully and are only grid-snapped.
const minAlignSegmentLength = 12.0

// AlignToGrid snaps a path to a square grid and straightens segments that
// run close to a canonical angle.
//
// Parameters:
//   - path: The path to align. Not modified.
//   - gridSize: Grid spacing in pixels. Values <= 0 disable grid snapping
//     (points keep their coordinates, angle re-projection still applies).
//   - snapAngles: Canonical angles in degrees. Nil uses DefaultSnapAngles.
//   - angleTolerance: Maximum deviation, in degrees, for a segment to be
//     re-projected onto a canonical angle. Typical: 15-20.
//
// Each point is first snapped to the nearest grid intersection. Then, for
// every point after the first, the segment from the previous aligned point
// is measured; if it is at least ~12px long and its angle lies within
// angleTolerance of a canonical angle, the point is re-projected along that
// canonical angle at the same segment length, overriding the raw grid snap.
// The first point is grid-snapped but never angle-adjusted since it has no
// predecessor. Paths with fewer than 2 points are returned unchanged apart
// from grid snapping.
func AlignToGrid(path []geometry.Point, gridSize float64, snapAngles []float64, angleTolerance float64) []geometry.Point {
	out := make([]geometry.Point, len(path))
	if len(path) == 0 {
		return out
	}
	if snapAngles == nil {
		snapAngles = DefaultSnapAngles()
	}

	out[0] = snapToGrid(path[0], gridSize)

	for i := 1; i < len(path); i++ {
		candidate := snapToGrid(path[i], gridSize)

		dx := candidate.X - out[i-1].X
		dy := candidate.Y - out[i-1].Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length < minAlignSegmentLength {
			out[i] = candidate
			continue
		}

		angle := segmentAngle(out[i-1], candidate)
		snapped, ok := nearestSnapAngle(angle, snapAngles, angleTolerance)
		if !ok {
			out[i] = candidate
			continue
		}

		rad := snapped * math.Pi / 180
		out[i] = geometry.Point{
			X: out[i-1].X + length*math.Cos(rad),
			Y: out[i-1].Y + length*math.Sin(rad),
		}
	}
	return out
}

// AlignmentScore returns the fraction of path segments whose angle lies
// within angleTolerance of one of the canonical snapAngles.
//
// Zero-length segments are ignored. Returns 1.0 for paths with fewer than
// 2 points or with no measurable segments (nothing is misaligned).
// Nil snapAngles uses DefaultSnapAngles.
func AlignmentScore(path []geometry.Point, snapAngles []float64, angleTolerance float64) float64 {
	if len(path) < 2 {
		return 1.0
	}
	if snapAngles == nil {
		snapAngles = DefaultSnapAngles()
	}

	var measured, aligned int
	for i := 1; i < len(path); i++ {
		if path[i] == path[i-1] {
			continue
		}
		measured++
		angle := segmentAngle(path[i-1], path[i])
		if _, ok := nearestSnapAngle(angle, snapAngles, angleTolerance); ok {
			aligned++
		}
	}

	if measured == 0 {
		return 1.0
	}
	return float64(aligned) / float64(measured)
}

// snapToGrid rounds both coordinates to the nearest multiple of gridSize.
// Non-positive gridSize leaves the point untouched.
func snapToGrid(p geometry.Point, gridSize float64) geometry.Point {
	if gridSize <= 0 {
		return p
	}
	return geometry.Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}

// segmentAngle returns the angle of the segment a->b in degrees, normalized
// to [0, 360). 0 points right, 90 points down (Y grows downward on canvas).
func segmentAngle(a, b geometry.Point) float64 {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// nearestSnapAngle finds the canonical angle closest to the given angle.
// Returns false when no canonical angle lies within the tolerance.
func nearestSnapAngle(angle float64, snapAngles []float64, tolerance float64) (float64, bool) {
	best := math.MaxFloat64
	var bestAngle float64
	for _, snap := range snapAngles {
		d := angleDelta(angle, snap)
		if d < best {
			best = d
			bestAngle = snap
		}
	}
	if best > tolerance {
		return 0, false
	}
	return bestAngle, true
}

// angleDelta returns the smallest absolute difference between two angles in
// degrees, accounting for wrap-around (e.g. delta(350, 0) == 10).
func angleDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	d = math.Mod(d, 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
