package optimize

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
)

// SuggestionKind identifies the transform an optimization suggestion
// proposes. The set is closed: every switch over SuggestionKind in this
// package handles all four constants.
type SuggestionKind string

const (
	// KindSmoothing proposes a low-pass smoothing pass over a jagged path.
	KindSmoothing SuggestionKind = "smoothing"

	// KindSimplification proposes RDP point reduction of an over-dense path.
	KindSimplification SuggestionKind = "simplification"

	// KindClosure proposes snapping a nearly-closed path shut.
	KindClosure SuggestionKind = "closure"

	// KindAlignment proposes grid/angle alignment of an almost-regular path.
	KindAlignment SuggestionKind = "alignment"
)

// Suggestion is one ranked optimization proposal for a path.
//
// Suggestions are transient: they are produced for one path at one point in
// time and are superseded by a fresh analysis whenever the path changes.
type Suggestion struct {
	// Kind is the transform this suggestion proposes.
	Kind SuggestionKind `json:"kind"`

	// Title is a short human-readable name for the suggestion.
	Title string `json:"title"`

	// Description explains what the transform would do to this path.
	Description string `json:"description"`

	// Confidence indicates how strongly the measurements support applying
	// this suggestion, from 0 to 100.
	Confidence float64 `json:"confidence"`

	// ProposedPath is the result of applying the transform to OriginalPath
	// with the analyzer's tuned parameters.
	ProposedPath []geometry.Point `json:"proposed_path"`

	// OriginalPath is the path that was analyzed.
	OriginalPath []geometry.Point `json:"original_path"`

	// ImprovementSummary states the measured before/after delta, e.g.
	// "points 120 -> 34 (72% fewer)". Always computed from the actual
	// proposed path, never a canned string.
	ImprovementSummary string `json:"improvement_summary"`
}

// Config holds the analyzer thresholds and the tuned transform parameters
// used when synthesizing suggestions.
//
// The defaults are one canonical constant set consolidated from several
// near-identical tunings; treat them as configuration, not contract.
type Config struct {
	// SmoothIntensity is the blend fraction passed to Smooth.
	SmoothIntensity float64

	// JaggednessThreshold is the minimum jaggedness score (0-1) that
	// triggers a smoothing suggestion.
	JaggednessThreshold float64

	// JaggednessScale converts a jaggedness score into a confidence:
	// confidence = min(jaggedness × JaggednessScale, 95).
	JaggednessScale float64

	// SimplifyEpsilon is the starting RDP tolerance in pixels.
	SimplifyEpsilon float64

	// MaxRetainedFraction is the SimplifyAdaptive retry trigger.
	MaxRetainedFraction float64

	// MinPointsForSimplify is the minimum path size considered dense
	// enough to be worth simplifying.
	MinPointsForSimplify int

	// MinReductionPercent is the minimum point-count reduction (0-100) the
	// simplified result must achieve for a suggestion to be emitted.
	MinReductionPercent float64

	// SimplifyConfidenceScale converts the reduction percentage into a
	// confidence: confidence = min(reduction × scale, 90).
	SimplifyConfidenceScale float64

	// ClosureMinGap and ClosureMaxGap bound the endpoint gap, in pixels,
	// for a closure suggestion. Below the minimum the path already counts
	// as closed; above the maximum it is not a plausible closure candidate.
	ClosureMinGap float64
	ClosureMaxGap float64

	// ClosureConfidenceFloor is the lowest confidence a closure suggestion
	// can carry; confidence decays from 90 as the gap widens.
	ClosureConfidenceFloor float64

	// GridSize is the grid spacing passed to AlignToGrid.
	GridSize float64

	// SnapAngles are the canonical angles in degrees. Nil means
	// DefaultSnapAngles.
	SnapAngles []float64

	// AngleTolerance is the angular tolerance, in degrees, for both the
	// alignment score and the AlignToGrid re-projection.
	AngleTolerance float64

	// AlignmentThreshold is the alignment score (0-1) below which an
	// alignment suggestion is emitted.
	AlignmentThreshold float64

	// MinSegmentsForAlign is the minimum number of segments a path needs
	// before alignment is considered.
	MinSegmentsForAlign int
}

// DefaultConfig returns the canonical tuning for hand-drawn outlines at
// typical canvas resolutions.
func DefaultConfig() Config {
	return Config{
		SmoothIntensity:         0.5,
		JaggednessThreshold:     0.28,
		JaggednessScale:         120,
		SimplifyEpsilon:         2.0,
		MaxRetainedFraction:     0.65,
		MinPointsForSimplify:    15,
		MinReductionPercent:     15,
		SimplifyConfidenceScale: 1.8,
		ClosureMinGap:           2,
		ClosureMaxGap:           30,
		ClosureConfidenceFloor:  62,
		GridSize:                10,
		AngleTolerance:          18,
		AlignmentThreshold:      0.75,
		MinSegmentsForAlign:     6,
	}
}

// Jaggedness measures how rough a path is as the mean absolute turning
// angle at its interior vertices, normalized by π.
//
// A straight polyline scores 0; a path that reverses direction at every
// vertex approaches 1. Zero-length segments are skipped. Returns 0 for
// paths with fewer than 3 points.
func Jaggedness(path []geometry.Point) float64 {
	if len(path) < 3 {
		return 0
	}

	var sum float64
	var count int
	for i := 1; i < len(path)-1; i++ {
		a, b, c := path[i-1], path[i], path[i+1]
		if a == b || b == c {
			continue
		}

		in := math.Atan2(b.Y-a.Y, b.X-a.X)
		out := math.Atan2(c.Y-b.Y, c.X-b.X)
		turn := math.Abs(normalizeAngle(out - in))
		sum += turn / math.Pi
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// normalizeAngle wraps an angle in radians into (-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Analyze measures a path and returns ranked optimization suggestions using
// the default configuration. See AnalyzeWithConfig.
func Analyze(path []geometry.Point) []Suggestion {
	return AnalyzeWithConfig(path, DefaultConfig())
}

// AnalyzeWithConfig measures a path and synthesizes at most one suggestion
// per transform kind, sorted by confidence descending.
//
// Paths with fewer than 3 points return no suggestions. Each suggestion's
// ProposedPath is the actual transform output for this path, and its
// ImprovementSummary is derived from the measured before/after values.
//
// Analyze is a pure function: repeated calls on the same path return
// equivalent results and the input is never modified.
func AnalyzeWithConfig(path []geometry.Point, cfg Config) []Suggestion {
	if len(path) < 3 {
		return nil
	}

	var suggestions []Suggestion

	if s, ok := smoothingSuggestion(path, cfg); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := simplificationSuggestion(path, cfg); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := closureSuggestion(path, cfg); ok {
		suggestions = append(suggestions, s)
	}
	if s, ok := alignmentSuggestion(path, cfg); ok {
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}

func smoothingSuggestion(path []geometry.Point, cfg Config) (Suggestion, bool) {
	jaggedness := Jaggedness(path)
	if jaggedness <= cfg.JaggednessThreshold {
		return Suggestion{}, false
	}

	proposed := Smooth(path, cfg.SmoothIntensity)
	after := Jaggedness(proposed)

	reduction := 0.0
	if jaggedness > 0 {
		reduction = (jaggedness - after) / jaggedness * 100
	}

	return Suggestion{
		Kind:        KindSmoothing,
		Title:       "Smooth jagged outline",
		Description: "The outline turns sharply between neighboring points. Blending each point toward its neighbors produces a calmer curve without moving the endpoints.",
		Confidence:  math.Min(jaggedness*cfg.JaggednessScale, 95),
		ProposedPath: proposed,
		OriginalPath: clonePath(path),
		ImprovementSummary: fmt.Sprintf("jaggedness %.2f -> %.2f (%.0f%% less turning)",
			jaggedness, after, reduction),
	}, true
}

func simplificationSuggestion(path []geometry.Point, cfg Config) (Suggestion, bool) {
	if len(path) < cfg.MinPointsForSimplify {
		return Suggestion{}, false
	}

	proposed := SimplifyAdaptive(path, cfg.SimplifyEpsilon, cfg.MaxRetainedFraction)
	reduction := (1 - float64(len(proposed))/float64(len(path))) * 100
	if reduction <= cfg.MinReductionPercent {
		return Suggestion{}, false
	}

	return Suggestion{
		Kind:        KindSimplification,
		Title:       "Reduce point count",
		Description: "Many points sit within a few pixels of the line through their neighbors. Removing them keeps the shape while making the outline easier to edit.",
		Confidence:  math.Min(reduction*cfg.SimplifyConfidenceScale, 90),
		ProposedPath: proposed,
		OriginalPath: clonePath(path),
		ImprovementSummary: fmt.Sprintf("points %d -> %d (%.0f%% fewer)",
			len(path), len(proposed), reduction),
	}, true
}

func closureSuggestion(path []geometry.Point, cfg Config) (Suggestion, bool) {
	gap := ClosureGap(path)
	if gap <= cfg.ClosureMinGap || gap >= cfg.ClosureMaxGap {
		return Suggestion{}, false
	}

	proposed := AutoClose(path, cfg.ClosureMaxGap)

	return Suggestion{
		Kind:        KindClosure,
		Title:       "Close the outline",
		Description: "The outline almost returns to its starting point. Snapping the last point onto the first closes the region so it can be filled.",
		Confidence:  math.Max(90-gap, cfg.ClosureConfidenceFloor),
		ProposedPath: proposed,
		OriginalPath: clonePath(path),
		ImprovementSummary: fmt.Sprintf("closes a %.1fpx gap between the endpoints", gap),
	}, true
}

func alignmentSuggestion(path []geometry.Point, cfg Config) (Suggestion, bool) {
	if len(path)-1 < cfg.MinSegmentsForAlign {
		return Suggestion{}, false
	}

	score := AlignmentScore(path, cfg.SnapAngles, cfg.AngleTolerance)
	if score >= cfg.AlignmentThreshold {
		return Suggestion{}, false
	}

	proposed := AlignToGrid(path, cfg.GridSize, cfg.SnapAngles, cfg.AngleTolerance)
	after := AlignmentScore(proposed, cfg.SnapAngles, cfg.AngleTolerance)

	return Suggestion{
		Kind:        KindAlignment,
		Title:       "Align to grid and axes",
		Description: "Most segments run close to, but not exactly along, the horizontal, vertical, or diagonal axes. Snapping to the grid straightens the shape.",
		Confidence:  math.Min(50+(1-score)*50, 90),
		ProposedPath: proposed,
		OriginalPath: clonePath(path),
		ImprovementSummary: fmt.Sprintf("aligned segments %.0f%% -> %.0f%%",
			score*100, after*100),
	}, true
}

// Apply composes the selected suggestions onto a path.
//
// Suggestions are applied in descending-confidence order, and each transform
// operates on the output of the previous one, not on the original path.
// This matches the result of applying suggestions one at a time with a
// re-analysis between them. The transforms are re-run with the tuned
// parameters from cfg; the stored ProposedPath values are ignored because
// they were computed against the original path.
//
// Returns a new path; the input is not modified.
func Apply(path []geometry.Point, suggestions []Suggestion, cfg Config) []geometry.Point {
	ordered := make([]Suggestion, len(suggestions))
	copy(ordered, suggestions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Confidence > ordered[j].Confidence
	})

	current := clonePath(path)
	for _, s := range ordered {
		switch s.Kind {
		case KindSmoothing:
			current = Smooth(current, cfg.SmoothIntensity)
		case KindSimplification:
			current = SimplifyAdaptive(current, cfg.SimplifyEpsilon, cfg.MaxRetainedFraction)
		case KindClosure:
			current = AutoClose(current, cfg.ClosureMaxGap)
		case KindAlignment:
			current = AlignToGrid(current, cfg.GridSize, cfg.SnapAngles, cfg.AngleTolerance)
		}
	}
	return current
}

func clonePath(path []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(path))
	copy(out, path)
	return out
}
