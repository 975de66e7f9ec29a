package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointArraySchema is the schema fragment for a path: an array of {x, y}
// objects in canvas pixel coordinates.
func pointArraySchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x": map[string]interface{}{"type": "number"},
				"y": map[string]interface{}{"type": "number"},
			},
			"required": []string{"x", "y"},
		},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Path Transforms
		{
			Name:        "path_simplify",
			Description: "Reduce the point count of a path while preserving its shape (Ramer-Douglas-Peucker). Endpoints are always retained.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to simplify"),
					"epsilon": map[string]interface{}{
						"type":        "number",
						"description": "Maximum allowed deviation in pixels (default 2.0)",
						"default":     2.0,
					},
					"max_retained_fraction": map[string]interface{}{
						"type":        "number",
						"description": "Optional target: retry with a larger epsilon until at most this fraction of points remains (0-1)",
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "path_smooth",
			Description: "Smooth a jagged path by blending interior points with their neighbors. The first and last points never move.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to smooth"),
					"intensity": map[string]interface{}{
						"type":        "number",
						"description": "Smoothing strength 0-1 (default 0.5). 0 returns the path unchanged.",
						"default":     0.5,
					},
					"wide": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the wider 4-tap blend for very noisy freehand input",
						"default":     false,
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "path_auto_close",
			Description: "Close a nearly-closed path by snapping its last point onto its first when the gap is within the threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to close"),
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Maximum gap in pixels to close (default 30)",
						"default":     30,
					},
					"seamed": map[string]interface{}{
						"type":        "boolean",
						"description": "Insert a midpoint before closing instead of replacing the last point",
						"default":     false,
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "path_align_grid",
			Description: "Snap a path onto a pixel grid and straighten near-horizontal/vertical/diagonal segments onto canonical angles.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to align"),
					"grid_size": map[string]interface{}{
						"type":        "number",
						"description": "Grid spacing in pixels (default 10). 0 disables grid snapping.",
						"default":     10,
					},
					"angle_tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Degrees within which a segment snaps to a canonical angle (default 18)",
						"default":     18,
					},
					"snap_angles": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Canonical angles in degrees (default 0, 45, ..., 315)",
					},
				},
				"required": []string{"points"},
			},
		},

		// Analysis
		{
			Name:        "path_analyze",
			Description: "Analyze a path and return outline-improvement suggestions (smoothing, simplification, closure, alignment) ordered by confidence, each with a proposed path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to analyze"),
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "path_apply_suggestions",
			Description: "Apply accepted suggestions to a path. Suggestions compose in descending confidence order, each transform running on the previous output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Path to transform"),
					"suggestions": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"kind": map[string]interface{}{
									"type": "string",
									"enum": []string{"smoothing", "simplification", "closure", "alignment"},
								},
								"confidence": map[string]interface{}{"type": "number"},
							},
							"required": []string{"kind"},
						},
						"description": "Accepted suggestions, typically from path_analyze",
					},
				},
				"required": []string{"points", "suggestions"},
			},
		},

		// Polygon Queries
		{
			Name:        "polygon_convex_hull",
			Description: "Compute the convex hull of a point set.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Points to hull"),
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "polygon_area",
			Description: "Compute the enclosed area of a polygon in square pixels (shoelace formula).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": pointArraySchema("Polygon vertices"),
				},
				"required": []string{"points"},
			},
		},

		// Extraction
		{
			Name:        "mask_extract_polygon",
			Description: "Convert a segmentation mask (row-major per-pixel scores) into a boundary polygon. Returns no polygon when the mask holds no region large enough.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Row-major pixel scores, width*height values",
					},
					"width":  map[string]interface{}{"type": "integer", "description": "Mask width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Mask height in pixels"},
					"strategy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"contour", "hull"},
						"description": "Extraction strategy (default contour)",
						"default":     "contour",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Foreground score threshold (default 0.5)",
						"default":     0.5,
					},
					"min_area_pixels": map[string]interface{}{
						"type":        "number",
						"description": "Reject polygons enclosing less area than this (default 64)",
						"default":     64,
					},
					"target_width": map[string]interface{}{
						"type":        "integer",
						"description": "Optional canvas width to resample the mask to",
					},
					"target_height": map[string]interface{}{
						"type":        "integer",
						"description": "Optional canvas height to resample the mask to",
					},
				},
				"required": []string{"data", "width", "height"},
			},
		},
		{
			Name:        "detections_to_regions",
			Description: "Convert detector bounding boxes into rectangle regions with palette colors, dropping overlapping duplicates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"boxes": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x_min": map[string]interface{}{"type": "number"},
								"y_min": map[string]interface{}{"type": "number"},
								"x_max": map[string]interface{}{"type": "number"},
								"y_max": map[string]interface{}{"type": "number"},
								"label": map[string]interface{}{"type": "string"},
								"score": map[string]interface{}{"type": "number", "description": "Model confidence 0-1"},
							},
							"required": []string{"x_min", "y_min", "x_max", "y_max"},
						},
						"description": "Detector output boxes in canvas coordinates",
					},
					"iou_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Bounding-box IoU above which boxes count as duplicates (default 0.7)",
						"default":     0.7,
					},
					"max_regions": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum regions to return (default 20)",
						"default":     20,
					},
				},
				"required": []string{"boxes"},
			},
		},

		// Compositing
		{
			Name:        "regions_composite",
			Description: "Render regions over a canvas and return the composited image as base64 PNG. Provide either a canvas file path or blank-canvas dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"canvas_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the base canvas image (PNG, JPEG, or GIF)",
					},
					"canvas_width": map[string]interface{}{
						"type":        "integer",
						"description": "Blank canvas width when no canvas_path is given",
					},
					"canvas_height": map[string]interface{}{
						"type":        "integer",
						"description": "Blank canvas height when no canvas_path is given",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Blank canvas background color (default #ffffff)",
						"default":     "#ffffff",
					},
					"regions": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "object"},
						"description": "Regions to draw, as returned by detections_to_regions or assembled by the client",
					},
					"fill_opacity": map[string]interface{}{
						"type":        "number",
						"description": "Interior alpha 0-1 (default 0.35)",
						"default":     0.35,
					},
					"outline_width": map[string]interface{}{
						"type":        "integer",
						"description": "Outline stroke width in pixels (default 2)",
						"default":     2,
					},
				},
				"required": []string{"regions"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
