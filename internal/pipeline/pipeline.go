// Package pipeline chains the segmentation and extraction stages and handles
// reading the photograph and writing both result images.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/ironsheep/rope-path-filter/internal/extract"
	"github.com/ironsheep/rope-path-filter/internal/imaging"
	"github.com/ironsheep/rope-path-filter/internal/segment"
)

// Result describes the images a run produced.
type Result struct {
	// Highlight is the segmentation output at the resized dimensions.
	Highlight *image.NRGBA

	// Path is the final finalSize x finalSize silhouette.
	Path *image.Gray

	// HighlightPath and OutputPath are where the images were written.
	HighlightPath string
	OutputPath    string
}

// Process runs both stages in memory. The highlight image is handed straight
// to extraction instead of being re-read from disk.
func Process(ctx context.Context, src image.Image, cfg Config, log zerolog.Logger) (*image.NRGBA, *image.Gray, error) {
	if cfg.FinalSize < 1 {
		return nil, nil, fmt.Errorf("invalid final size %d: must be positive", cfg.FinalSize)
	}

	highlight, err := segment.Segment(src, cfg.ResizeDim, cfg.Segment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to segment image: %w", err)
	}
	log.Debug().
		Int("width", highlight.Bounds().Dx()).
		Int("height", highlight.Bounds().Dy()).
		Msg("segmented")

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	stages, err := extract.Connect(highlight, cfg.Extract)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract path: %w", err)
	}
	log.Debug().
		Int("mask_pixels", imaging.CountOn(stages.Mask)).
		Int("closed_pixels", imaging.CountOn(stages.Closed)).
		Int("seeds", len(stages.Seeds)).
		Int("reached_pixels", imaging.CountOn(stages.Reached)).
		Msg("connected")

	if len(stages.Seeds) == 0 {
		log.Warn().Msg("no foreground on the seed edge, output will be empty")
	}

	path := extract.Render(stages.Reached, cfg.FinalSize, cfg.Extract.Highlight)
	return highlight, path, nil
}

// Run loads cfg.InputPath, processes it, and writes the highlight and final
// images.
//
// Nothing is written unless both stages succeed. A missing or unreadable input
// returns *imaging.LoadError; a failed write returns *imaging.StorageError.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", cfg.InputPath).
		Int("width", src.Bounds().Dx()).
		Int("height", src.Bounds().Dy()).
		Msg("loaded")

	highlight, path, err := Process(ctx, src, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.HighlightPath != "" {
		if err := imaging.Save(highlight, cfg.HighlightPath); err != nil {
			return nil, err
		}
		log.Debug().Str("path", cfg.HighlightPath).Msg("saved highlight image")
	}

	if err := imaging.Save(path, cfg.OutputPath); err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.OutputPath).Msg("saved connected path")

	return &Result{
		Highlight:     highlight,
		Path:          path,
		HighlightPath: cfg.HighlightPath,
		OutputPath:    cfg.OutputPath,
	}, nil
}
