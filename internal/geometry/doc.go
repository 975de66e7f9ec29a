// Package geometry provides the 2D primitives shared by the outline engine.
//
// This package implements the leaf-level math used by path optimization and
// mask extraction: point distances, segment-clamped perpendicular distance,
// shoelace polygon area, convex hulls, and axis-aligned bounding boxes with
// intersection-over-union.
//
// # Coordinate System
//
// All coordinates are in canvas pixel space:
//   - X: horizontal position (0 = leftmost)
//   - Y: vertical position (0 = topmost)
//
// Coordinates are float64 because drawn paths and resampled mask boundaries
// land between pixel centers.
//
// # Immutability
//
// Every function in this package treats its input slices as read-only and
// returns freshly allocated results. There is no shared mutable state, so all
// operations are safe for concurrent use.
//
// # Degenerate Inputs
//
// Functions are total over all path lengths, including empty input:
//   - PolygonArea returns 0 for fewer than 3 points
//   - ConvexHull returns the input unchanged for 3 or fewer points
//   - BoundingRect returns the zero Rect for an empty point set
//
// Degenerate inputs never produce errors or panics.
package geometry
