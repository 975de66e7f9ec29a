package geometry

import (
	"math"
	"testing"
)

func TestConvexHull_SmallInputs(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"single point", []Point{{1, 2}},},
		{"two points", []Point{{0, 0}, {5, 5}}},
		{"three points", []Point{{0, 0}, {5, 0}, {2, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvexHull(tt.points)
			if len(got) != len(tt.points) {
				t.Fatalf("hull of %d points: got %d points, want input unchanged",
					len(tt.points), len(got))
			}
			for i := range got {
				if got[i] != tt.points[i] {
					t.Errorf("point %d: got %v, want %v", i, got[i], tt.points[i])
				}
			}
		})
	}
}

func TestConvexHull_Square(t *testing.T) {
	// Corners plus interior and edge points; only the corners survive
	// because collinear points are dropped by the turn test.
	points := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{5, 5}, {5, 0}, {10, 5}, {3, 7},
	}

	hull := ConvexHull(points)
	if len(hull) != 4 {
		t.Fatalf("hull size: got %d, want 4 (corners only), hull=%v", len(hull), hull)
	}

	corners := map[Point]bool{
		{0, 0}: true, {10, 0}: true, {10, 10}: true, {0, 10}: true,
	}
	for _, p := range hull {
		if !corners[p] {
			t.Errorf("unexpected hull point %v", p)
		}
	}
}

func TestConvexHull_Winding(t *testing.T) {
	// Starts at the lexicographically smallest point; clockwise on a Y-down
	// canvas: TL, TR, BR, BL.
	points := []Point{{10, 10}, {0, 10}, {10, 0}, {0, 0}, {5, 5}}

	hull := ConvexHull(points)
	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if len(hull) != len(want) {
		t.Fatalf("hull size: got %d, want %d, hull=%v", len(hull), len(want), hull)
	}
	for i := range want {
		if hull[i] != want[i] {
			t.Errorf("hull[%d] = %v, want %v", i, hull[i], want[i])
		}
	}
}

func TestConvexHull_Containment(t *testing.T) {
	points := []Point{
		{2, 1}, {7, 0}, {9, 4}, {6, 9}, {1, 7}, {4, 4}, {5, 6}, {3, 2}, {8, 8},
	}

	hull := ConvexHull(points)
	if len(hull) < 3 {
		t.Fatalf("hull collapsed to %d points", len(hull))
	}

	for _, p := range points {
		if !pointInOrOnHull(p, hull) {
			t.Errorf("input point %v lies outside hull %v", p, hull)
		}
	}
}

func TestConvexHull_DoesNotModifyInput(t *testing.T) {
	points := []Point{{9, 9}, {0, 0}, {5, 1}, {1, 8}}
	original := make([]Point, len(points))
	copy(original, points)

	ConvexHull(points)

	for i := range points {
		if points[i] != original[i] {
			t.Fatalf("input slice modified at %d: got %v, want %v", i, points[i], original[i])
		}
	}
}

// pointInOrOnHull reports whether p is inside or on the boundary of the hull.
// The hull vertices are consistently wound, so p is contained when every
// cross product has the same sign (or is zero, meaning on an edge).
func pointInOrOnHull(p Point, hull []Point) bool {
	var pos, neg int
	n := len(hull)
	for i := 0; i < n; i++ {
		c := cross(hull[i], hull[(i+1)%n], p)
		if math.Abs(c) < 1e-9 {
			continue
		}
		if c > 0 {
			pos++
		} else {
			neg++
		}
	}
	return pos == 0 || neg == 0
}
