package extraction

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
)

// Mask is a dense grid of per-pixel foreground scores, typically in [0, 1],
// as produced by an external segmentation model.
//
// Masks are read-only inputs: no function in this package modifies Data, and
// a mask is never retained past the extraction call that consumed it.
type Mask struct {
	// Data holds Width×Height scores in row-major order.
	Data []float64 `json:"data"`

	// Width is the grid width in pixels.
	Width int `json:"width"`

	// Height is the grid height in pixels.
	Height int `json:"height"`
}

// NewMask wraps raw model output in a Mask.
//
// When len(data) matches width×height the dimensions are taken as declared.
// When they disagree (a caller contract violation) the data is reshaped as
// a best-effort square grid of side floor(sqrt(len(data))) instead of
// failing: segmentation backends occasionally report padded dimensions, and
// a square reinterpretation recovers a usable (if imperfect) mask where an
// error would drop the result entirely. The trailing remainder is ignored.
// An empty data slice produces the zero Mask.
func NewMask(data []float64, width, height int) Mask {
	if width > 0 && height > 0 && width*height == len(data) {
		return Mask{Data: data, Width: width, Height: height}
	}
	if len(data) == 0 {
		return Mask{}
	}

	side := int(math.Sqrt(float64(len(data))))
	if side < 1 {
		return Mask{}
	}
	return Mask{Data: data[:side*side], Width: side, Height: side}
}

// At returns the score at (x, y), or 0 for coordinates outside the grid.
// Everything outside the mask counts as background.
func (m Mask) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// IsEmpty reports whether the mask holds no pixels.
func (m Mask) IsEmpty() bool {
	return m.Width <= 0 || m.Height <= 0 || len(m.Data) == 0
}

// reshaped reconciles the data length with the declared dimensions, applying
// the NewMask square fallback when they disagree. Masks built as struct
// literals (e.g. unmarshaled from a model backend) bypass NewMask, so every
// extraction entry point re-checks here before indexing Data.
func (m Mask) reshaped() Mask {
	if m.Width > 0 && m.Height > 0 && m.Width*m.Height == len(m.Data) {
		return m
	}
	return NewMask(m.Data, m.Width, m.Height)
}

// Resample returns a copy of the mask scaled to width×height using
// nearest-neighbor sampling: src = round((dst / dstDim) × srcDim), clamped
// to the source grid. Returns the mask unchanged when the dimensions
// already match, and the zero Mask for non-positive targets.
func (m Mask) Resample(width, height int) Mask {
	if width <= 0 || height <= 0 || m.IsEmpty() {
		return Mask{}
	}
	if width == m.Width && height == m.Height {
		return m
	}

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		srcY := nearestIndex(y, height, m.Height)
		for x := 0; x < width; x++ {
			srcX := nearestIndex(x, width, m.Width)
			data[y*width+x] = m.Data[srcY*m.Width+srcX]
		}
	}
	return Mask{Data: data, Width: width, Height: height}
}

// nearestIndex maps a destination index onto the source axis.
func nearestIndex(dst, dstDim, srcDim int) int {
	src := int(math.Round(float64(dst) / float64(dstDim) * float64(srcDim)))
	if src < 0 {
		return 0
	}
	if src >= srcDim {
		return srcDim - 1
	}
	return src
}

// MaskFromImage builds a luminance mask from an image, with scores in
// [0, 1]. A positive blurRadius applies a Gaussian blur first, which
// suppresses single-pixel noise before boundary extraction.
func MaskFromImage(img image.Image, blurRadius float64) Mask {
	if blurRadius > 0 {
		img = blur.Gaussian(img, blurRadius)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// ITU-R BT.601 luminance on 8-bit components.
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			data[y*width+x] = lum / 255.0
		}
	}
	return Mask{Data: data, Width: width, Height: height}
}

// BinaryMaskFromImage thresholds an image into a 0/1 mask. Pixels whose
// luminance is at or above threshold (0-1) score 1.0, everything else 0.
func BinaryMaskFromImage(img image.Image, threshold float64) Mask {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}

	gray := segment.Threshold(img, uint8(threshold*255))

	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y >= 128 {
				data[y*width+x] = 1.0
			}
		}
	}
	return Mask{Data: data, Width: width, Height: height}
}
