// Package server implements the MCP (Model Context Protocol) server for outline tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the outline
// geometry engine through the MCP protocol: path cleanup transforms,
// improvement analysis, mask-to-polygon extraction, and region compositing.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Path Transforms:
//   - path_simplify: Reduce point count (RDP)
//   - path_smooth: Blend out freehand jitter
//   - path_auto_close: Snap a near-closed path shut
//   - path_align_grid: Grid snapping and angle straightening
//
// Analysis:
//   - path_analyze: Ranked improvement suggestions with proposed paths
//   - path_apply_suggestions: Apply accepted suggestions in order
//
// Polygon Queries:
//   - polygon_convex_hull: Convex hull of a point set
//   - polygon_area: Shoelace area
//
// Extraction:
//   - mask_extract_polygon: Segmentation mask to boundary polygon
//   - detections_to_regions: Detector boxes to deduplicated regions
//
// Compositing:
//   - regions_composite: Render regions over a canvas as base64 PNG
//
// # Canvas Caching
//
// The server keeps an in-memory cache of decoded canvas images, keyed by
// path, so repeated compositing calls against the same canvas skip disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Paths too short for a transform pass through unchanged rather than
// failing, and a mask with no qualifying region reports found=false. Tool
// execution errors (bad JSON, unreadable canvas) are returned as JSON-RPC
// error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
