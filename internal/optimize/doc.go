// Package optimize implements outline cleanup transforms and the analyzer
// that turns path measurements into ranked optimization suggestions.
//
// The package operates on hand-drawn outline paths: ordered point sequences
// captured from freehand, rectangle, or polygon drawing tools. Four transform
// families are provided:
//
//   - Simplification: Ramer–Douglas–Peucker point reduction
//   - Smoothing: low-pass weighted averaging and Catmull-Rom interpolation
//   - Closure: snapping a nearly-closed path shut
//   - Alignment: grid snapping with canonical-angle re-projection
//
// # Analysis Pipeline
//
// Analyze measures a path (jaggedness, point count, closure gap, segment
// alignment) and synthesizes one suggestion per applicable transform. Each
// suggestion carries the proposed path, a confidence score from 0 to 100,
// and a summary derived from the measured before/after delta. Suggestions
// are returned sorted by confidence, descending.
//
// Applying several suggestions composes them in that same descending order,
// each transform operating on the output of the previous one. This matches
// the behavior of applying suggestions one at a time and re-analyzing.
//
// # Transform Contracts
//
// Every transform takes a path and returns a new path without modifying the
// input. A transform never collapses a path with 2 or more points below
// 2 points, and simplification always retains the first and last point.
// Paths below a transform's minimum point count are returned unchanged.
// All functions are pure and safe for concurrent use.
//
// # Tuning
//
// Thresholds and confidence scaling constants live in Config. The values in
// DefaultConfig are tuned for hand-drawn outlines at typical canvas
// resolutions; they are configuration, not behavioral guarantees.
package optimize
