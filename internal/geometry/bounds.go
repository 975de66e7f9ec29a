package geometry

// Rect is an axis-aligned bounding box in canvas pixel space.
//
// (MinX, MinY) is the top-left corner and (MaxX, MaxY) the bottom-right.
// A Rect with Max <= Min on either axis has zero area.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the rect, never negative.
func (r Rect) Width() float64 {
	if r.MaxX < r.MinX {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rect, never negative.
func (r Rect) Height() float64 {
	if r.MaxY < r.MinY {
		return 0
	}
	return r.MaxY - r.MinY
}

// Area returns Width × Height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// BoundingRect returns the smallest Rect containing every point in the set.
// Returns the zero Rect for an empty set.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// IoU returns the intersection-over-union of two bounding boxes.
//
// The result ranges from 0.0 (disjoint) to 1.0 (identical). Used to decide
// whether two detected regions describe the same object: candidates with
// IoU above ~0.7 are treated as duplicates by the extraction filters.
// Returns 0 when the union has zero area.
func IoU(a, b Rect) float64 {
	interW := minFloat(a.MaxX, b.MaxX) - maxFloat(a.MinX, b.MinX)
	interH := minFloat(a.MaxY, b.MaxY) - maxFloat(a.MinY, b.MinY)
	if interW <= 0 || interH <= 0 {
		return 0
	}

	intersection := interW * interH
	union := a.Area() + b.Area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
