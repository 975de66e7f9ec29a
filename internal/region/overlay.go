package region

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// CompositeOptions control overlay rendering.
type CompositeOptions struct {
	// FillOpacity is the interior alpha in [0, 1]. Zero means the default
	// of 0.35.
	FillOpacity float64 `json:"fill_opacity,omitempty"`

	// OutlineWidth is the stroke width in pixels. Zero means 2.
	OutlineWidth int `json:"outline_width,omitempty"`

	// Width and Height, when positive, resize the composited canvas.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

const (
	defaultFillOpacity  = 0.35
	defaultOutlineWidth = 2
)

// CompositeResult is the rendered overlay, encoded for transport.
type CompositeResult struct {
	// ImageBase64 is the PNG canvas, base64 encoded (standard alphabet).
	ImageBase64 string `json:"image_base64"`

	// Format is always "png".
	Format string `json:"format"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// RegionCount is how many regions were drawn.
	RegionCount int `json:"region_count"`
}

// Composite draws regions over a base canvas and returns the result as
// base64 PNG.
//
// Filled regions are painted with an even-odd scanline fill at the fill
// opacity, then every region's outline is stroked at full opacity. Regions
// with fewer than 3 points or an unparseable color are skipped rather than
// failing the whole render. The base image is cloned, never modified.
func Composite(base image.Image, regions []Region, opts CompositeOptions) (*CompositeResult, error) {
	if base == nil {
		return nil, fmt.Errorf("composite: nil base canvas")
	}

	if opts.FillOpacity <= 0 {
		opts.FillOpacity = defaultFillOpacity
	}
	if opts.FillOpacity > 1 {
		opts.FillOpacity = 1
	}
	if opts.OutlineWidth <= 0 {
		opts.OutlineWidth = defaultOutlineWidth
	}

	canvas := imaging.Clone(base)

	drawn := 0
	for _, r := range regions {
		if len(r.Points) < 3 {
			continue
		}

		painted := false
		if r.Filled && r.FillColor != "" {
			fill, err := ParseHexColor(r.FillColor)
			if err == nil {
				fillPolygon(canvas, r.Points, fill, opts.FillOpacity)
				painted = true
			}
		}

		outlineHex := r.OutlineColor
		if outlineHex == "" {
			outlineHex = r.FillColor
		}
		if outlineHex != "" {
			outline, err := ParseHexColor(outlineHex)
			if err == nil {
				strokePolygon(canvas, r.Points, outline, opts.OutlineWidth)
				painted = true
			}
		}
		if painted {
			drawn++
		}
	}

	if opts.Width > 0 && opts.Height > 0 {
		canvas = imaging.Resize(canvas, opts.Width, opts.Height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("composite: encode png: %w", err)
	}

	bounds := canvas.Bounds()
	return &CompositeResult{
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Format:      "png",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		RegionCount: drawn,
	}, nil
}

// BlankCanvas creates a solid-color canvas for compositing regions without a
// source image.
func BlankCanvas(width, height int, hex string) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("blank canvas: invalid size %dx%d", width, height)
	}
	bg, err := ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	return imaging.New(width, height, bg), nil
}

// fillPolygon paints the polygon interior using even-odd scanline filling.
// Each scanline at pixel-center height collects the x crossings of the
// polygon edges; pixels between alternating crossing pairs are inside.
func fillPolygon(canvas *image.NRGBA, points []geometry.Point, c color.NRGBA, opacity float64) {
	bounds := canvas.Bounds()

	minY := int(math.Floor(pointsMinY(points)))
	maxY := int(math.Ceil(pointsMaxY(points)))
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY >= bounds.Max.Y {
		maxY = bounds.Max.Y - 1
	}

	n := len(points)
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5

		var crossings []float64
		for i := 0; i < n; i++ {
			a := points[i]
			b := points[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			// Half-open edge interval so shared vertices count once.
			if (a.Y <= sy && sy < b.Y) || (b.Y <= sy && sy < a.Y) {
				t := (sy - a.Y) / (b.Y - a.Y)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := int(math.Ceil(crossings[i] - 0.5))
			x1 := int(math.Floor(crossings[i+1] - 0.5))
			if x0 < bounds.Min.X {
				x0 = bounds.Min.X
			}
			if x1 >= bounds.Max.X {
				x1 = bounds.Max.X - 1
			}
			for x := x0; x <= x1; x++ {
				blendPixel(canvas, x, y, c, opacity)
			}
		}
	}
}

// strokePolygon draws every polygon edge, including the closing edge, with a
// square brush of the given width.
func strokePolygon(canvas *image.NRGBA, points []geometry.Point, c color.NRGBA, width int) {
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		strokeSegment(canvas, a, b, c, width)
	}
}

func strokeSegment(canvas *image.NRGBA, a, b geometry.Point, c color.NRGBA, width int) {
	length := geometry.Distance(a, b)
	steps := int(length*2) + 1
	half := float64(width) / 2

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		cx := a.X + t*(b.X-a.X)
		cy := a.Y + t*(b.Y-a.Y)

		x0 := int(math.Floor(cx - half))
		x1 := int(math.Ceil(cx + half - 1))
		y0 := int(math.Floor(cy - half))
		y1 := int(math.Ceil(cy + half - 1))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				blendPixel(canvas, x, y, c, 1)
			}
		}
	}
}

// blendPixel alpha-blends c over the canvas pixel at (x, y).
func blendPixel(canvas *image.NRGBA, x, y int, c color.NRGBA, opacity float64) {
	if !(image.Point{X: x, Y: y}).In(canvas.Bounds()) {
		return
	}

	dst := canvas.NRGBAAt(x, y)
	blend := func(src, dst uint8) uint8 {
		return uint8(float64(src)*opacity + float64(dst)*(1-opacity) + 0.5)
	}
	canvas.SetNRGBA(x, y, color.NRGBA{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: 255,
	})
}

func pointsMinY(points []geometry.Point) float64 {
	min := points[0].Y
	for _, p := range points[1:] {
		if p.Y < min {
			min = p.Y
		}
	}
	return min
}

func pointsMaxY(points []geometry.Point) float64 {
	max := points[0].Y
	for _, p := range points[1:] {
		if p.Y > max {
			max = p.Y
		}
	}
	return max
}
