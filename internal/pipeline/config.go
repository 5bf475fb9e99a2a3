package pipeline

import (
	"errors"
	"fmt"

	"github.com/ironsheep/rope-path-filter/internal/extract"
	"github.com/ironsheep/rope-path-filter/internal/segment"
)

// Default file locations used when the command is run without arguments.
const (
	DefaultInputPath     = "image.png"
	DefaultHighlightPath = "smooth_traced_path.png"
	DefaultOutputPath    = "output6.png"
)

// Config describes one pipeline run.
type Config struct {
	// InputPath is the photograph to process.
	InputPath string

	// HighlightPath receives the intermediate highlight image. Empty skips it.
	HighlightPath string

	// OutputPath receives the final grayscale silhouette.
	OutputPath string

	// ResizeDim is the long side the photograph is normalized to.
	ResizeDim int

	// FinalSize is the side of the square output image.
	FinalSize int

	Segment segment.Options
	Extract extract.Options
}

// DefaultConfig returns the standard configuration: image.png in,
// output6.png out, 128px working size and a 64x64 result.
func DefaultConfig() Config {
	return Config{
		InputPath:     DefaultInputPath,
		HighlightPath: DefaultHighlightPath,
		OutputPath:    DefaultOutputPath,
		ResizeDim:     segment.DefaultTargetDimension,
		FinalSize:     extract.DefaultFinalSize,
		Segment:       segment.DefaultOptions(),
		Extract:       extract.DefaultOptions(),
	}
}

// Validate checks that the configuration can be run.
func (c Config) Validate() error {
	var errs []error
	if c.InputPath == "" {
		errs = append(errs, errors.New("input path is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if c.ResizeDim < 1 {
		errs = append(errs, fmt.Errorf("resize dimension must be positive, got %d", c.ResizeDim))
	}
	if c.FinalSize < 1 {
		errs = append(errs, fmt.Errorf("final size must be positive, got %d", c.FinalSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
