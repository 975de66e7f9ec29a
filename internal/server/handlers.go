package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/outline-tools-mcp/internal/extraction"
	"github.com/ironsheep/outline-tools-mcp/internal/geometry"
	"github.com/ironsheep/outline-tools-mcp/internal/optimize"
	"github.com/ironsheep/outline-tools-mcp/internal/region"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "path_simplify", "path_analyze").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the appropriate optimize/extraction/region function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Path Transforms
	case "path_simplify":
		return s.handlePathSimplify(args)
	case "path_smooth":
		return s.handlePathSmooth(args)
	case "path_auto_close":
		return s.handlePathAutoClose(args)
	case "path_align_grid":
		return s.handlePathAlignGrid(args)

	// Analysis
	case "path_analyze":
		return s.handlePathAnalyze(args)
	case "path_apply_suggestions":
		return s.handlePathApplySuggestions(args)

	// Polygon Queries
	case "polygon_convex_hull":
		return s.handlePolygonConvexHull(args)
	case "polygon_area":
		return s.handlePolygonArea(args)

	// Extraction
	case "mask_extract_polygon":
		return s.handleMaskExtractPolygon(args)
	case "detections_to_regions":
		return s.handleDetectionsToRegions(args)

	// Compositing
	case "regions_composite":
		return s.handleRegionsComposite(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// PathResult is the shared result shape for path transforms.
type PathResult struct {
	// Points is the transformed path.
	Points []geometry.Point `json:"points"`

	// PointCount and OriginalCount report the size change.
	PointCount    int `json:"point_count"`
	OriginalCount int `json:"original_count"`
}

func pathResult(original, transformed []geometry.Point) *PathResult {
	return &PathResult{
		Points:        transformed,
		PointCount:    len(transformed),
		OriginalCount: len(original),
	}
}

// === Path Transform Handlers ===

type pathSimplifyArgs struct {
	Points              []geometry.Point `json:"points"`
	Epsilon             float64          `json:"epsilon"`
	MaxRetainedFraction float64          `json:"max_retained_fraction"`
}

func (s *Server) handlePathSimplify(args json.RawMessage) (interface{}, error) {
	var a pathSimplifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Epsilon == 0 {
		a.Epsilon = 2.0
	}

	var out []geometry.Point
	if a.MaxRetainedFraction > 0 {
		out = optimize.SimplifyAdaptive(a.Points, a.Epsilon, a.MaxRetainedFraction)
	} else {
		out = optimize.Simplify(a.Points, a.Epsilon)
	}
	return pathResult(a.Points, out), nil
}

type pathSmoothArgs struct {
	Points    []geometry.Point `json:"points"`
	Intensity float64          `json:"intensity"`
	Wide      bool             `json:"wide"`
}

func (s *Server) handlePathSmooth(args json.RawMessage) (interface{}, error) {
	var a pathSmoothArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Intensity == 0 {
		a.Intensity = 0.5
	}

	var out []geometry.Point
	if a.Wide {
		out = optimize.SmoothWide(a.Points, a.Intensity)
	} else {
		out = optimize.Smooth(a.Points, a.Intensity)
	}
	return pathResult(a.Points, out), nil
}

type pathAutoCloseArgs struct {
	Points    []geometry.Point `json:"points"`
	Threshold float64          `json:"threshold"`
	Seamed    bool             `json:"seamed"`
}

func (s *Server) handlePathAutoClose(args json.RawMessage) (interface{}, error) {
	var a pathAutoCloseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold == 0 {
		a.Threshold = optimize.DefaultConfig().ClosureMaxGap
	}

	var out []geometry.Point
	if a.Seamed {
		out = optimize.AutoCloseSeamed(a.Points, a.Threshold)
	} else {
		out = optimize.AutoClose(a.Points, a.Threshold)
	}
	return pathResult(a.Points, out), nil
}

type pathAlignGridArgs struct {
	Points         []geometry.Point `json:"points"`
	GridSize       float64          `json:"grid_size"`
	AngleTolerance float64          `json:"angle_tolerance"`
	SnapAngles     []float64        `json:"snap_angles"`
}

func (s *Server) handlePathAlignGrid(args json.RawMessage) (interface{}, error) {
	var a pathAlignGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	def := optimize.DefaultConfig()
	if a.GridSize == 0 {
		a.GridSize = def.GridSize
	}
	if a.AngleTolerance == 0 {
		a.AngleTolerance = def.AngleTolerance
	}

	out := optimize.AlignToGrid(a.Points, a.GridSize, a.SnapAngles, a.AngleTolerance)
	return pathResult(a.Points, out), nil
}

// === Analysis Handlers ===

type pathAnalyzeArgs struct {
	Points []geometry.Point `json:"points"`
}

// AnalyzeResult pairs the suggestion list with the measurements that drove it.
type AnalyzeResult struct {
	Suggestions    []optimize.Suggestion `json:"suggestions"`
	Jaggedness     float64               `json:"jaggedness"`
	AlignmentScore float64               `json:"alignment_score"`
	PointCount     int                   `json:"point_count"`
}

func (s *Server) handlePathAnalyze(args json.RawMessage) (interface{}, error) {
	var a pathAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := optimize.DefaultConfig()
	suggestions := optimize.AnalyzeWithConfig(a.Points, cfg)
	if suggestions == nil {
		suggestions = []optimize.Suggestion{}
	}

	return &AnalyzeResult{
		Suggestions:    suggestions,
		Jaggedness:     optimize.Jaggedness(a.Points),
		AlignmentScore: optimize.AlignmentScore(a.Points, optimize.DefaultSnapAngles(), cfg.AngleTolerance),
		PointCount:     len(a.Points),
	}, nil
}

type pathApplySuggestionsArgs struct {
	Points      []geometry.Point      `json:"points"`
	Suggestions []optimize.Suggestion `json:"suggestions"`
}

func (s *Server) handlePathApplySuggestions(args json.RawMessage) (interface{}, error) {
	var a pathApplySuggestionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	out := optimize.Apply(a.Points, a.Suggestions, optimize.DefaultConfig())
	return pathResult(a.Points, out), nil
}

// === Polygon Query Handlers ===

type polygonArgs struct {
	Points []geometry.Point `json:"points"`
}

func (s *Server) handlePolygonConvexHull(args json.RawMessage) (interface{}, error) {
	var a polygonArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hull := geometry.ConvexHull(a.Points)
	return pathResult(a.Points, hull), nil
}

// AreaResult reports a polygon's enclosed area.
type AreaResult struct {
	Area       float64 `json:"area"`
	PointCount int     `json:"point_count"`
}

func (s *Server) handlePolygonArea(args json.RawMessage) (interface{}, error) {
	var a polygonArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &AreaResult{
		Area:       geometry.PolygonArea(a.Points),
		PointCount: len(a.Points),
	}, nil
}

// === Extraction Handlers ===

type maskExtractPolygonArgs struct {
	Data          []float64 `json:"data"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Strategy      string    `json:"strategy"`
	Threshold     float64   `json:"threshold"`
	MinAreaPixels float64   `json:"min_area_pixels"`
	TargetWidth   int       `json:"target_width"`
	TargetHeight  int       `json:"target_height"`
}

// MaskPolygonResult is the extraction outcome. Found is false when the mask
// holds no region large enough, which is a normal result, not an error.
type MaskPolygonResult struct {
	Found      bool             `json:"found"`
	Polygon    []geometry.Point `json:"polygon,omitempty"`
	PointCount int              `json:"point_count"`
	Area       float64          `json:"area"`
}

func (s *Server) handleMaskExtractPolygon(args json.RawMessage) (interface{}, error) {
	var a maskExtractPolygonArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := extraction.DefaultOptions()
	if a.Strategy != "" {
		opts.Strategy = extraction.Strategy(a.Strategy)
	}
	if a.Threshold > 0 {
		opts.Threshold = a.Threshold
	}
	if a.MinAreaPixels > 0 {
		opts.MinAreaPixels = a.MinAreaPixels
	}
	opts.TargetWidth = a.TargetWidth
	opts.TargetHeight = a.TargetHeight

	mask := extraction.NewMask(a.Data, a.Width, a.Height)
	polygon := extraction.ExtractPolygon(mask, opts)
	if polygon == nil {
		return &MaskPolygonResult{Found: false}, nil
	}

	return &MaskPolygonResult{
		Found:      true,
		Polygon:    polygon,
		PointCount: len(polygon),
		Area:       geometry.PolygonArea(polygon),
	}, nil
}

type detectionsToRegionsArgs struct {
	Boxes        []extraction.DetectionBox `json:"boxes"`
	IoUThreshold float64                   `json:"iou_threshold"`
	MaxRegions   int                       `json:"max_regions"`
}

// RegionsResult carries converted regions.
type RegionsResult struct {
	Regions     []region.Region `json:"regions"`
	RegionCount int             `json:"region_count"`
}

func (s *Server) handleDetectionsToRegions(args json.RawMessage) (interface{}, error) {
	var a detectionsToRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.IoUThreshold == 0 {
		a.IoUThreshold = 0.7
	}
	if a.MaxRegions == 0 {
		a.MaxRegions = 20
	}

	boxes := extraction.FilterDuplicateBoxes(a.Boxes, a.IoUThreshold, a.MaxRegions)
	regions := make([]region.Region, len(boxes))
	for i, box := range boxes {
		regions[i] = region.FromDetectionBox(box, i)
	}

	return &RegionsResult{Regions: regions, RegionCount: len(regions)}, nil
}

// === Compositing Handlers ===

type regionsCompositeArgs struct {
	CanvasPath   string          `json:"canvas_path"`
	CanvasWidth  int             `json:"canvas_width"`
	CanvasHeight int             `json:"canvas_height"`
	Background   string          `json:"background"`
	Regions      []region.Region `json:"regions"`
	FillOpacity  float64         `json:"fill_opacity"`
	OutlineWidth int             `json:"outline_width"`
}

func (s *Server) handleRegionsComposite(args json.RawMessage) (interface{}, error) {
	var a regionsCompositeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var base image.Image
	switch {
	case a.CanvasPath != "":
		img, err := s.cache.Load(a.CanvasPath)
		if err != nil {
			return nil, err
		}
		base = img
	case a.CanvasWidth > 0 && a.CanvasHeight > 0:
		bg := a.Background
		if bg == "" {
			bg = "#ffffff"
		}
		img, err := region.BlankCanvas(a.CanvasWidth, a.CanvasHeight, bg)
		if err != nil {
			return nil, err
		}
		base = img
	default:
		return nil, fmt.Errorf("either canvas_path or canvas_width/canvas_height is required")
	}

	return region.Composite(base, a.Regions, region.CompositeOptions{
		FillOpacity:  a.FillOpacity,
		OutlineWidth: a.OutlineWidth,
	})
}
