package extract

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/rope-path-filter/internal/imaging"
)

// DefaultFinalSize is the side length of the square output image.
const DefaultFinalSize = 64

// HighlightRange selects the highlight yellow painted by the segmentation
// stage (H=30, S=255, V=255) with some slack for resampling artifacts.
// It is much narrower than segment.ForegroundRange.
var HighlightRange = imaging.HSVRange{
	Lower: imaging.HSV{H: 20, S: 100, V: 100},
	Upper: imaging.HSV{H: 40, S: 255, V: 255},
}

// Options controls the extraction stage.
type Options struct {
	// Range recovers the highlight mask from the input image.
	Range imaging.HSVRange

	// CloseRadius is the radius of the elliptical closing element; the
	// element is (2r+1) x (2r+1).
	CloseRadius int

	// CloseIterations is the number of dilations (then erosions) in the closing.
	CloseIterations int

	// Seeds selects where the flood fill starts.
	Seeds SeedPolicy

	// Highlight is the color reached pixels are repainted with before
	// downsampling.
	Highlight color.NRGBA
}

// DefaultOptions returns a 5x5 elliptical closing with two iterations and
// bottom-row seeding.
func DefaultOptions() Options {
	return Options{
		Range:           HighlightRange,
		CloseRadius:     2,
		CloseIterations: 2,
		Seeds:           BottomRow,
		Highlight:       imaging.Highlight,
	}
}

// Stages holds the full-resolution intermediate results of an extraction.
type Stages struct {
	Mask    *image.Gray
	Closed  *image.Gray
	Seeds   []image.Point
	Reached *image.Gray
}

// Connect runs the full-resolution part of the extraction: re-threshold,
// closing, seeding, flood fill and border trim.
func Connect(img image.Image, opts Options) (*Stages, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, &imaging.LoadError{Path: "<memory>", Err: imaging.ErrEmptyImage}
	}
	if opts.CloseRadius < 0 {
		return nil, fmt.Errorf("invalid close radius %d: must not be negative", opts.CloseRadius)
	}

	seeder := opts.Seeds
	if seeder == nil {
		seeder = BottomRow
	}

	mask := imaging.InRange(img, opts.Range)
	closed := imaging.Close(mask, imaging.EllipseRadius(opts.CloseRadius), opts.CloseIterations)
	seeds := seeder.Seeds(closed)
	reached := TrimBorder(FillFromSeeds(closed, seeds))

	return &Stages{
		Mask:    mask,
		Closed:  closed,
		Seeds:   seeds,
		Reached: reached,
	}, nil
}

// ExtractPath reduces a highlight-colored image to a finalSize x finalSize
// grayscale silhouette of the region connected to the seed edge.
//
// The result contains only the values 0 and 255.
func ExtractPath(img image.Image, finalSize int, opts Options) (*image.Gray, error) {
	if finalSize < 1 {
		return nil, fmt.Errorf("invalid final size %d: must be positive", finalSize)
	}

	stages, err := Connect(img, opts)
	if err != nil {
		return nil, err
	}

	return Render(stages.Reached, finalSize, opts.Highlight), nil
}

// Render paints a reached mask, downsamples it to size x size, and binarizes
// it to a black and white grayscale image.
func Render(reached *image.Gray, size int, highlight color.NRGBA) *image.Gray {
	painted := imaging.Paint(reached, highlight)
	small := imaging.ResizeArea(painted, size, size)
	return imaging.ToGray(imaging.BinarizeNonBlack(small))
}
