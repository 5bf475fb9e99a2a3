package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ScaleFactor returns the ratio that maps the longer side of a width x height
// image onto target.
func ScaleFactor(width, height, target int) float64 {
	longSide := width
	if height > longSide {
		longSide = height
	}
	return float64(target) / float64(longSide)
}

// ScaledSize applies ScaleFactor to both dimensions, rounding to the nearest
// pixel. Neither dimension drops below 1.
func ScaledSize(width, height, target int) (int, int) {
	scale := ScaleFactor(width, height, target)
	newWidth := int(math.Round(float64(width) * scale))
	newHeight := int(math.Round(float64(height) * scale))
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}

// ResizeLongSide scales img so that its longer side equals target, keeping
// the aspect ratio.
//
// The Lanczos filter is used in both directions: images already smaller than
// target are upscaled with it rather than passed through.
func ResizeLongSide(img image.Image, target int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := ScaledSize(bounds.Dx(), bounds.Dy(), target)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// ResizeArea resizes img to exactly width x height using a box filter, which
// averages each destination pixel over the source area it covers.
func ResizeArea(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Box)
}
