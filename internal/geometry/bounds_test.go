package geometry

import (
	"math"
	"testing"
)

func TestBoundingRect(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Rect
	}{
		{"empty", nil, Rect{}},
		{"single point", []Point{{3, 4}}, Rect{3, 4, 3, 4}},
		{"spread", []Point{{5, 1}, {-2, 8}, {3, -4}}, Rect{-2, -4, 5, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingRect(tt.points)
			if got != tt.want {
				t.Errorf("BoundingRect: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{MinX: 2, MinY: 3, MaxX: 12, MaxY: 8}
	if r.Width() != 10 {
		t.Errorf("Width: got %f, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height: got %f, want 5", r.Height())
	}
	if r.Area() != 50 {
		t.Errorf("Area: got %f, want 50", r.Area())
	}

	inverted := Rect{MinX: 5, MinY: 5, MaxX: 0, MaxY: 0}
	if inverted.Area() != 0 {
		t.Errorf("inverted rect area: got %f, want 0", inverted.Area())
	}
}

func TestIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, 1.0},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 30, 30}, 0.0},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, 0.0},
		// Intersection 50, union 150.
		{"half overlap", Rect{0, 0, 10, 10}, Rect{5, 0, 15, 10}, 1.0 / 3.0},
		{"contained quarter", Rect{0, 0, 10, 10}, Rect{0, 0, 5, 5}, 0.25},
		{"zero area boxes", Rect{}, Rect{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IoU(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IoU: got %f, want %f", got, tt.want)
			}
			if sym := IoU(tt.b, tt.a); math.Abs(sym-got) > 1e-12 {
				t.Errorf("IoU not symmetric: %f vs %f", got, sym)
			}
		})
	}
}
