// Package server implements an MCP (Model Context Protocol) server that exposes
// the rope path pipeline as tools.
//
// This lets an agent or training harness request silhouettes from camera frames
// without shelling out to the command for every image.
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
//   - rope_segment: photograph -> yellow-on-black highlight image
//   - rope_extract_path: highlight image -> 64x64 black and white silhouette
//   - rope_pipeline: both stages in one call
//
// Every tool returns the produced image as base64 PNG and can also write it to
// an optional output path.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
