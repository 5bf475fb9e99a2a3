package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/rope-path-filter/internal/extract"
	ropeimg "github.com/ironsheep/rope-path-filter/internal/imaging"
	"github.com/ironsheep/rope-path-filter/internal/pipeline"
	"github.com/ironsheep/rope-path-filter/internal/segment"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "rope_segment", "rope_pipeline").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ImageResult is one produced image, returned inline as base64 PNG.
type ImageResult struct {
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	ForegroundPixels int    `json:"foreground_pixels"`
	OutputPath       string `json:"output_path,omitempty"`
	ImageBase64      string `json:"image_base64"`
	MimeType         string `json:"mime_type"`
}

// PipelineResult holds both images of a full run.
type PipelineResult struct {
	Highlight ImageResult `json:"highlight"`
	Path      ImageResult `json:"path"`
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "rope_segment":
		return s.handleRopeSegment(args)
	case "rope_extract_path":
		return s.handleRopeExtractPath(args)
	case "rope_pipeline":
		return s.handleRopePipeline(ctx, args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Pipeline Handlers ===

type ropeSegmentArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	TargetSize int    `json:"target_size"`
}

func (s *Server) handleRopeSegment(args json.RawMessage) (interface{}, error) {
	var a ropeSegmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.TargetSize == 0 {
		a.TargetSize = segment.DefaultTargetDimension
	}

	src, err := ropeimg.Load(a.Path)
	if err != nil {
		return nil, err
	}

	out, err := segment.Segment(src, a.TargetSize, segment.DefaultOptions())
	if err != nil {
		return nil, err
	}

	return s.imageResult(out, ropeimg.InRange(out, extract.HighlightRange), a.OutputPath)
}

type ropeExtractArgs struct {
	Path        string `json:"path"`
	OutputPath  string `json:"output_path"`
	FinalSize   int    `json:"final_size"`
	CloseRadius *int   `json:"close_radius"`
	SeedEdge    string `json:"seed_edge"`
}

// options applies defaults for omitted arguments.
func (a ropeExtractArgs) options() (extract.Options, error) {
	opts := extract.DefaultOptions()
	if a.CloseRadius != nil {
		opts.CloseRadius = *a.CloseRadius
	}
	edge, err := extract.ParseEdge(a.SeedEdge)
	if err != nil {
		return opts, err
	}
	opts.Seeds = extract.EdgeRow{Edge: edge}
	return opts, nil
}

func (s *Server) handleRopeExtractPath(args json.RawMessage) (interface{}, error) {
	var a ropeExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.FinalSize == 0 {
		a.FinalSize = extract.DefaultFinalSize
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	src, err := ropeimg.Load(a.Path)
	if err != nil {
		return nil, err
	}

	out, err := extract.ExtractPath(src, a.FinalSize, opts)
	if err != nil {
		return nil, err
	}

	return s.imageResult(out, out, a.OutputPath)
}

type ropePipelineArgs struct {
	ropeExtractArgs
	HighlightPath string `json:"highlight_path"`
	TargetSize    int    `json:"target_size"`
}

func (s *Server) handleRopePipeline(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a ropePipelineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := pipeline.DefaultConfig()
	cfg.InputPath = a.Path
	if a.TargetSize != 0 {
		cfg.ResizeDim = a.TargetSize
	}
	if a.FinalSize != 0 {
		cfg.FinalSize = a.FinalSize
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	cfg.Extract = opts

	src, err := ropeimg.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	highlight, path, err := pipeline.Process(ctx, src, cfg, s.log)
	if err != nil {
		return nil, err
	}

	hl, err := s.imageResult(highlight, ropeimg.InRange(highlight, extract.HighlightRange), a.HighlightPath)
	if err != nil {
		return nil, err
	}
	final, err := s.imageResult(path, path, a.OutputPath)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{Highlight: *hl, Path: *final}, nil
}

// imageResult optionally saves img and encodes it as base64 PNG. fg is the
// mask whose pixels are reported as foreground.
func (s *Server) imageResult(img image.Image, fg *image.Gray, outputPath string) (*ImageResult, error) {
	if outputPath != "" {
		if err := ropeimg.Save(img, outputPath); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode result image: %w", err)
	}

	return &ImageResult{
		Width:            img.Bounds().Dx(),
		Height:           img.Bounds().Dy(),
		ForegroundPixels: ropeimg.CountOn(fg),
		OutputPath:       outputPath,
		ImageBase64:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:         "image/png",
	}, nil
}
