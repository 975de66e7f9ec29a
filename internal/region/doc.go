// Package region models annotated regions on an image canvas and renders
// them as composited overlays.
//
// A Region couples an outline polygon with presentation state: fill and
// outline colors, a label, and the confidence of the detection it came from.
// Regions are value types; nothing in this package mutates a caller's Region,
// and ApplySuggestions returns an updated copy.
//
// Colors are handled as "#RRGGBB" hex strings at the API boundary and
// converted through go-colorful for blending and palette generation. Overlay
// rendering fills polygons with an even-odd scanline pass, strokes outlines,
// and returns the composited canvas as base64-encoded PNG.
package region
