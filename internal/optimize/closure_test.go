package optimize

import (
	"testing"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

func TestAutoClose(t *testing.T) {
	tests := []struct {
		name      string
		path      []geometry.Point
		threshold float64
		want      []geometry.Point
	}{
		{
			// Gap from {1,1} to {0,0} is ~1.41, inside the threshold.
			"near gap closes",
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 1, Y: 1}},
			5,
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 0, Y: 0}},
		},
		{
			"wide gap unchanged",
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}},
			5,
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}},
		},
		{
			"already closed unchanged",
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 0, Y: 0}},
			5,
			[]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 0, Y: 0}},
		},
		{
			"two points unchanged",
			[]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
			5,
			[]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		},
		{
			"empty unchanged",
			nil,
			5,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoClose(tt.path, tt.threshold)
			if !pathsEqual(got, tt.want) {
				t.Errorf("AutoClose: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutoClose_Idempotent(t *testing.T) {
	paths := [][]geometry.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 15, Y: 15}},
		{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}},
	}

	for _, path := range paths {
		once := AutoClose(path, 5)
		twice := AutoClose(once, 5)
		if !pathsEqual(once, twice) {
			t.Errorf("AutoClose not idempotent for %v: %v vs %v", path, once, twice)
		}
	}
}

func TestAutoCloseSeamed(t *testing.T) {
	path := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 2, Y: 2}}

	got := AutoCloseSeamed(path, 5)
	want := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	if !pathsEqual(got, want) {
		t.Errorf("AutoCloseSeamed: got %v, want %v", got, want)
	}

	// Once closed, the seam variant is a no-op too.
	again := AutoCloseSeamed(got, 5)
	if !pathsEqual(again, got) {
		t.Errorf("AutoCloseSeamed on closed path: got %v, want unchanged", again)
	}
}

func TestAutoCloseSeamed_WideGapUnchanged(t *testing.T) {
	path := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}}
	got := AutoCloseSeamed(path, 5)
	if !pathsEqual(got, path) {
		t.Errorf("got %v, want unchanged", got)
	}
}

func TestClosureGap(t *testing.T) {
	tests := []struct {
		name string
		path []geometry.Point
		want float64
	}{
		{"empty", nil, 0},
		{"single point", []geometry.Point{{X: 4, Y: 4}}, 0},
		{"open triangle", []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 3, Y: 4}}, 5},
		{"closed", []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosureGap(tt.path); got != tt.want {
				t.Errorf("ClosureGap: got %f, want %f", got, tt.want)
			}
		})
	}
}
