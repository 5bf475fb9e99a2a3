package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createRopeImageFile writes a width x height image filled with bg and a
// two pixel wide vertical stroke of fg that touches the bottom edge.
func createRopeImageFile(t *testing.T, width, height int, bg, fg color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}
	for y := height / 4; y < height; y++ {
		img.Set(width/2, y, fg)
		img.Set(width/2+1, y, fg)
	}

	path := filepath.Join(t.TempDir(), "rope.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unwraps the text payload of a successful tools/call response.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", content)
	}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), v); err != nil {
		t.Fatalf("failed to decode tool result: %v", err)
	}
}

func decodeImage(t *testing.T, r ImageResult) image.Image {
	t.Helper()

	if r.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", r.MimeType)
	}
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	return img
}

var (
	floorGray = color.RGBA{40, 40, 40, 255}
	ropeColor = color.RGBA{230, 200, 40, 255}
	black     = color.RGBA{0, 0, 0, 255}
	yellow    = color.RGBA{255, 255, 0, 255}
)

func TestHandleToolsCall_RopeSegment(t *testing.T) {
	s := newTestServer()
	imgPath := createRopeImageFile(t, 256, 128, floorGray, ropeColor)
	outPath := filepath.Join(t.TempDir(), "highlight.png")

	resp := callTool(t, s, "rope_segment", map[string]interface{}{
		"path":        imgPath,
		"output_path": outPath,
	})

	var result ImageResult
	decodeContent(t, resp, &result)

	if result.Width != 128 || result.Height != 64 {
		t.Errorf("size: got %dx%d, want 128x64", result.Width, result.Height)
	}
	if result.ForegroundPixels == 0 {
		t.Error("expected highlighted rope pixels")
	}
	if b := decodeImage(t, result).Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("decoded size: got %v", b)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestHandleToolsCall_RopeSegment_TargetSize(t *testing.T) {
	s := newTestServer()
	imgPath := createRopeImageFile(t, 200, 100, floorGray, ropeColor)

	resp := callTool(t, s, "rope_segment", map[string]interface{}{
		"path":        imgPath,
		"target_size": 50,
	})

	var result ImageResult
	decodeContent(t, resp, &result)

	if result.Width != 50 || result.Height != 25 {
		t.Errorf("size: got %dx%d, want 50x25", result.Width, result.Height)
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath: got %q, want empty", result.OutputPath)
	}
}

func TestHandleToolsCall_RopeExtractPath(t *testing.T) {
	s := newTestServer()
	imgPath := createRopeImageFile(t, 128, 128, black, yellow)

	resp := callTool(t, s, "rope_extract_path", map[string]interface{}{
		"path": imgPath,
	})

	var result ImageResult
	decodeContent(t, resp, &result)

	if result.Width != 64 || result.Height != 64 {
		t.Errorf("size: got %dx%d, want 64x64", result.Width, result.Height)
	}
	if result.ForegroundPixels == 0 {
		t.Error("bottom-connected stroke should survive")
	}

	img := decodeImage(t, result)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			}
		}
	}
}

func TestHandleToolsCall_RopeExtractPath_SeedEdge(t *testing.T) {
	s := newTestServer()
	// The stroke starts a quarter of the way down, so nothing touches the top.
	imgPath := createRopeImageFile(t, 128, 128, black, yellow)

	resp := callTool(t, s, "rope_extract_path", map[string]interface{}{
		"path":       imgPath,
		"seed_edge":  "top",
		"final_size": 32,
	})

	var result ImageResult
	decodeContent(t, resp, &result)

	if result.Width != 32 || result.Height != 32 {
		t.Errorf("size: got %dx%d, want 32x32", result.Width, result.Height)
	}
	if result.ForegroundPixels != 0 {
		t.Errorf("ForegroundPixels: got %d, want 0", result.ForegroundPixels)
	}
}

func TestHandleToolsCall_RopeExtractPath_InvalidSeedEdge(t *testing.T) {
	s := newTestServer()
	imgPath := createRopeImageFile(t, 32, 32, black, yellow)

	resp := callTool(t, s, "rope_extract_path", map[string]interface{}{
		"path":      imgPath,
		"seed_edge": "middle",
	})

	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Fatalf("expected tool execution error, got %+v", resp)
	}
}

func TestHandleToolsCall_RopePipeline(t *testing.T) {
	s := newTestServer()
	imgPath := createRopeImageFile(t, 256, 192, floorGray, ropeColor)
	dir := t.TempDir()
	highlightPath := filepath.Join(dir, "smooth.png")
	outPath := filepath.Join(dir, "out.png")

	resp := callTool(t, s, "rope_pipeline", map[string]interface{}{
		"path":           imgPath,
		"highlight_path": highlightPath,
		"output_path":    outPath,
	})

	var result PipelineResult
	decodeContent(t, resp, &result)

	if result.Highlight.Width != 128 || result.Highlight.Height != 96 {
		t.Errorf("highlight size: got %dx%d, want 128x96", result.Highlight.Width, result.Highlight.Height)
	}
	if result.Path.Width != 64 || result.Path.Height != 64 {
		t.Errorf("path size: got %dx%d, want 64x64", result.Path.Width, result.Path.Height)
	}
	if result.Path.ForegroundPixels == 0 {
		t.Error("expected a non-empty silhouette")
	}
	for _, p := range []string{highlightPath, outPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := newTestServer()

	for _, tool := range []string{"rope_segment", "rope_extract_path", "rope_pipeline"} {
		t.Run(tool, func(t *testing.T) {
			resp := callTool(t, s, tool, map[string]interface{}{
				"path": "/nonexistent/rope.png",
			})

			if resp.Error == nil {
				t.Fatal("expected error for nonexistent file")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error.Code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newTestServer()
	resp := callTool(t, s, "image_load", map[string]interface{}{"path": "x.png"})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
	if resp.Error.Data != "unknown tool: image_load" {
		t.Errorf("Error.Data: got %v", resp.Error.Data)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{invalid json}`),
	})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error.Code: got %d, want -32602", resp.Error.Code)
	}
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	s := newTestServer()

	for _, tool := range []string{"rope_segment", "rope_extract_path", "rope_pipeline"} {
		if _, err := s.executeTool(context.Background(), tool, json.RawMessage(`{invalid}`)); err == nil {
			t.Errorf("%s: expected error for invalid JSON", tool)
		}
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := newTestServer()
	if _, err := s.executeTool(context.Background(), "unknown_tool", json.RawMessage(`{}`)); err == nil {
		t.Error("expected error for unknown tool")
	}
}
