package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// extractProperties are the arguments shared by rope_extract_path and rope_pipeline.
func extractProperties() map[string]interface{} {
	return map[string]interface{}{
		"final_size": map[string]interface{}{
			"type":        "integer",
			"description": "Side length of the square output image. Default 64",
			"default":     64,
		},
		"close_radius": map[string]interface{}{
			"type":        "integer",
			"description": "Radius of the elliptical closing element used to bridge gaps. Default 2 (5x5)",
			"default":     2,
		},
		"seed_edge": map[string]interface{}{
			"type":        "string",
			"description": "Image edge the rope is anchored to; only regions connected to it are kept",
			"enum":        []string{"bottom", "top", "left", "right"},
			"default":     "bottom",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	extractProps := extractProperties()
	extractProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a highlight image produced by rope_segment",
	}
	extractProps["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also write the silhouette to",
	}

	pipelineProps := extractProperties()
	pipelineProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the rope photograph",
	}
	pipelineProps["target_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Long side the photograph is resized to before detection. Default 128",
		"default":     128,
	}
	pipelineProps["highlight_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path to write the intermediate highlight image to",
	}
	pipelineProps["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path to write the final silhouette to",
	}

	return []Tool{
		{
			Name:        "rope_segment",
			Description: "Detect the rope in a photograph: resize to a bounded size, threshold in HSV, thicken, and return the foreground painted yellow on black as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the rope photograph",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the highlight image to",
					},
					"target_size": map[string]interface{}{
						"type":        "integer",
						"description": "Long side the photograph is resized to. Default 128",
						"default":     128,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "rope_extract_path",
			Description: "Keep only the yellow region connected to the anchor edge of a highlight image, close small gaps, and return it as a small black and white grayscale PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "rope_pipeline",
			Description: "Run segmentation and path extraction on a photograph in one call. Returns both the highlight image and the final silhouette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pipelineProps,
				"required":   []string{"path"},
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
