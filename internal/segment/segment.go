// Package segment implements the first pipeline stage: detecting the rope in
// a photograph and redrawing it as a solid highlight-colored silhouette.
package segment

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/rope-path-filter/internal/imaging"
)

// DefaultTargetDimension is the long side, in pixels, the photograph is
// normalized to before thresholding.
const DefaultTargetDimension = 128

// ForegroundRange is the HSV window a resized photo pixel must fall into to
// count as rope.
//
// The window is nearly the whole HSV cube and only rejects pixels whose hue,
// saturation or value is below 2 (near-black, grays and pure red). It selects
// foreground, not yellow; compare extract.HighlightRange.
var ForegroundRange = imaging.HSVRange{
	Lower: imaging.HSV{H: 2, S: 2, V: 2},
	Upper: imaging.HSV{H: 255, S: 255, V: 255},
}

// Options controls the segmentation stage.
type Options struct {
	// Range selects foreground pixels in HSV space.
	Range imaging.HSVRange

	// Kernel is the structuring element used to thicken the mask.
	Kernel imaging.StructuringElement

	// Iterations is the number of dilation passes.
	Iterations int

	// Highlight is the color foreground pixels are painted with.
	Highlight color.NRGBA
}

// DefaultOptions returns one 3x3 full dilation over ForegroundRange painted
// in imaging.Highlight.
func DefaultOptions() Options {
	return Options{
		Range:      ForegroundRange,
		Kernel:     imaging.Rect(3, 3),
		Iterations: 1,
		Highlight:  imaging.Highlight,
	}
}

// Masks holds the intermediate masks of a segmentation, both at the resized
// dimensions.
type Masks struct {
	Raw     *image.Gray
	Dilated *image.Gray
}

// Segment resizes src so its longer side is targetMaxDimension, thresholds it
// in HSV space, dilates the detected region and returns it painted in the
// highlight color over black.
//
// Resizing always happens, so a source smaller than the target is upscaled.
// The returned image has the resized dimensions.
func Segment(src image.Image, targetMaxDimension int, opts Options) (*image.NRGBA, error) {
	resized, err := Resize(src, targetMaxDimension)
	if err != nil {
		return nil, err
	}

	masks := ForegroundMask(resized, opts)
	return imaging.Paint(masks.Dilated, opts.Highlight), nil
}

// Resize validates src and scales it to targetMaxDimension on its longer side.
func Resize(src image.Image, targetMaxDimension int) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, &imaging.LoadError{Path: "<memory>", Err: imaging.ErrEmptyImage}
	}
	if targetMaxDimension < 1 {
		return nil, fmt.Errorf("invalid target dimension %d: must be positive", targetMaxDimension)
	}
	return imaging.ResizeLongSide(src, targetMaxDimension), nil
}

// ForegroundMask thresholds an already resized image and dilates the result.
func ForegroundMask(resized image.Image, opts Options) Masks {
	raw := imaging.InRange(resized, opts.Range)
	return Masks{
		Raw:     raw,
		Dilated: imaging.Dilate(raw, opts.Kernel, opts.Iterations),
	}
}
