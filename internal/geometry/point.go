package geometry

import "math"

// Point represents a 2D coordinate in canvas pixel space.
//
// Points are immutable value types. Operations throughout the engine take
// point slices as read-only input and return new slices.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointSegmentDistance returns the distance from p to the line segment [a, b].
//
// The point is projected onto the segment. If the projection parameter falls
// outside [0, 1], the distance to the nearest endpoint is returned instead of
// the distance to the infinite line through a and b. When a == b the segment
// is degenerate and the Euclidean distance from p to a is returned.
func PointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Distance(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	if t < 0 {
		return Distance(p, a)
	}
	if t > 1 {
		return Distance(p, b)
	}

	return Distance(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// PolygonArea returns the area enclosed by the polygon using the shoelace
// formula. The absolute value is taken, so both winding orders produce the
// same result. Returns 0 for fewer than 3 points.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// PathLength returns the total length of the polyline visiting the points in
// order. Returns 0 for fewer than 2 points. The path is not treated as
// closed; callers measuring a polygon perimeter must repeat the first point.
func PathLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

// Centroid returns the arithmetic mean of the point set.
// Returns the zero point for an empty set.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}
