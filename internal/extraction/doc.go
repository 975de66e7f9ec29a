// Package extraction converts external detector and segmenter output into
// outline polygons.
//
// The external machine-learning collaborators are out of scope: this package
// only consumes their results. Two result shapes are supported:
//
//   - Mask: a dense per-pixel score grid from a segmentation model
//   - DetectionBox: a rectangular detection with label and score
//
// # Mask-to-Polygon Strategies
//
// Two interchangeable extraction strategies are provided, selected through
// Options.Strategy:
//
//   - Hull: sample boundary pixels on a stride and take their convex hull.
//     Fast and robust for blob-like masks; concavities are lost.
//   - Contour: binarize, follow component borders with Moore-neighbor
//     tracing, keep the largest contour by area, and simplify it. Preserves
//     concave outlines at the cost of more work per mask.
//
// Both return the same shape: a polygon with at least 3 points, or nil when
// no region qualifies. An all-background mask returning nil is an expected
// outcome, not an error.
//
// # Deduplication
//
// Multi-probe extraction (one segmentation call per grid point) produces
// overlapping candidates for the same object. Candidates are compared by the
// intersection-over-union of their bounding boxes; above the duplicate
// threshold only the first is kept, and a result cap bounds the total.
//
// # Resolution Handling
//
// Masks often arrive at a different resolution than the display canvas.
// Mask.Resample performs nearest-neighbor resampling, and extraction options
// carry an optional target resolution so the returned polygon is already in
// canvas coordinates.
package extraction
