package extraction

import (
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
	"github.com/ironsheep/outline-tools-mcp/internal/optimize"
)

// ExtractContourPolygon implements the contour-tracing strategy: binarize
// the mask, follow the border of every 8-connected foreground component with
// Moore-neighbor tracing, keep the contour enclosing the largest shoelace
// area, and simplify it with RDP.
//
// Returns nil when no component produces a contour of at least 3 points, or
// when the winning contour's area falls below MinAreaPixels.
func ExtractContourPolygon(mask Mask, opts Options) []geometry.Point {
	opts = opts.normalized()
	mask = mask.reshaped()
	if mask.IsEmpty() {
		return nil
	}

	w, h := mask.Width, mask.Height

	fg := make([]bool, w*h)
	for i, v := range mask.Data {
		fg[i] = v >= opts.Threshold
	}

	visited := make([]bool, w*h)
	var best []geometry.Point
	bestArea := 0.0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if !fg[idx] || visited[idx] {
				continue
			}

			// Row-major scan order guarantees (x, y) is the first pixel
			// of its component, so its left neighbor is background, which
			// is the backtrack position Moore tracing starts from.
			contour := traceBoundary(fg, w, h, x, y)
			markComponent(fg, visited, w, h, x, y)

			if len(contour) < 3 {
				continue
			}
			if area := geometry.PolygonArea(contour); area > bestArea {
				bestArea = area
				best = contour
			}
		}
	}

	if best == nil {
		return nil
	}

	simplified := optimize.Simplify(best, opts.SimplifyTolerance)
	if len(simplified) < 3 || geometry.PolygonArea(simplified) < opts.MinAreaPixels {
		return nil
	}
	return simplified
}

// Clockwise 8-neighborhood: E, SE, S, SW, W, NW, N, NE.
var (
	neighborDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	neighborDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// traceBoundary walks the border of the component containing the start
// pixel using Moore-neighbor tracing.
//
// At each step the 8 neighbors of the current pixel are scanned clockwise,
// starting just after the backtrack direction; the first foreground pixel
// becomes the new current pixel and the background cell scanned immediately
// before it becomes the new backtrack. Tracing stops when the walk re-enters
// the start pixel with the original backtrack (Jacob's stopping criterion),
// which handles components whose border passes through the start pixel more
// than once. Collinear intermediate points are merged as they are emitted.
//
// The caller must guarantee that (startX-1, startY) is background.
func traceBoundary(fg []bool, w, h, startX, startY int) []geometry.Point {
	isFg := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && fg[y*w+x]
	}

	var pts []geometry.Point
	appendPoint := func(x, y int) {
		p := geometry.Point{X: float64(x), Y: float64(y)}
		n := len(pts)
		if n >= 1 && pts[n-1] == p {
			return
		}
		if n >= 2 && collinear(pts[n-2], pts[n-1], p) {
			pts[n-1] = p
			return
		}
		pts = append(pts, p)
	}

	cx, cy := startX, startY
	bx, by := startX-1, startY
	appendPoint(cx, cy)

	// Worst case visits every border cell from all 8 sides.
	maxSteps := 8*w*h + 8

	for step := 0; step < maxSteps; step++ {
		startDir := (dirIndex(bx-cx, by-cy) + 1) % 8

		found := false
		lastBG := [2]int{bx, by}
		for k := 0; k < 8; k++ {
			i := (startDir + k) % 8
			tx, ty := cx+neighborDX[i], cy+neighborDY[i]
			if isFg(tx, ty) {
				bx, by = lastBG[0], lastBG[1]
				cx, cy = tx, ty
				found = true
				break
			}
			lastBG = [2]int{tx, ty}
		}

		if !found {
			// Isolated single pixel.
			break
		}

		if cx == startX && cy == startY && bx == startX-1 && by == startY {
			break
		}
		appendPoint(cx, cy)
	}

	// Drop a duplicated closing point so the polygon is open like every
	// other path in the engine, then merge collinearity across the closing
	// edge back to the start.
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	for len(pts) >= 3 && collinear(pts[len(pts)-2], pts[len(pts)-1], pts[0]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// dirIndex maps a unit offset onto its clockwise neighborhood index.
func dirIndex(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if neighborDX[i] == dx && neighborDY[i] == dy {
			return i
		}
	}
	return 0
}

// collinear reports whether b lies on the straight line through a and c.
func collinear(a, b, c geometry.Point) bool {
	return (b.X-a.X)*(c.Y-b.Y)-(b.Y-a.Y)*(c.X-b.X) == 0
}

// markComponent flood-fills the 8-connected component containing (x, y),
// setting visited for each of its pixels. Iterative with an explicit stack
// so large blobs cannot overflow the call stack.
func markComponent(fg, visited []bool, w, h, x, y int) {
	stack := [][2]int{{x, y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		px, py := p[0], p[1]
		if px < 0 || py < 0 || px >= w || py >= h {
			continue
		}
		idx := py*w + px
		if visited[idx] || !fg[idx] {
			continue
		}
		visited[idx] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, [2]int{px + dx, py + dy})
			}
		}
	}
}
