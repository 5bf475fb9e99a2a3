package imaging

import (
	"fmt"
	"image"
	"math"
)

// StructuringElement is the neighborhood shape used by Dilate and Erode.
//
// The anchor is the element's center (Width/2, Height/2). Offsets lists the
// active cells relative to the anchor.
type StructuringElement struct {
	Width   int
	Height  int
	Offsets []image.Point
}

// Rect returns a full width x height structuring element.
func Rect(width, height int) StructuringElement {
	se := StructuringElement{Width: width, Height: height}
	ax, ay := width/2, height/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			se.Offsets = append(se.Offsets, image.Pt(x-ax, y-ay))
		}
	}
	return se
}

// Ellipse returns an elliptical structuring element inscribed in a
// width x height box.
//
// The raster matches the classic OpenCV construction: for each row the
// half-width is round(c * sqrt(1 - dy²/r²)) with r = height/2 and c = width/2.
// A 5x5 ellipse is therefore the 5x5 square without its four corners, and a
// 3x3 ellipse is a plus sign.
func Ellipse(width, height int) StructuringElement {
	se := StructuringElement{Width: width, Height: height}
	r := height / 2
	c := width / 2
	invR2 := 0.0
	if r > 0 {
		invR2 = 1 / float64(r*r)
	}

	for y := 0; y < height; y++ {
		dy := y - r
		if absInt(dy) > r {
			continue
		}
		dx := int(math.Round(float64(c) * math.Sqrt(float64(r*r-dy*dy)*invR2)))
		x1 := max(c-dx, 0)
		x2 := min(c+dx+1, width)
		for x := x1; x < x2; x++ {
			se.Offsets = append(se.Offsets, image.Pt(x-c, dy))
		}
	}
	return se
}

// EllipseRadius returns the (2r+1) x (2r+1) ellipse.
func EllipseRadius(r int) StructuringElement {
	return Ellipse(2*r+1, 2*r+1)
}

func (se StructuringElement) String() string {
	return fmt.Sprintf("%dx%d(%d cells)", se.Width, se.Height, len(se.Offsets))
}

// Dilate grows the foreground of mask: a pixel is set when any active cell
// of se, centered on it, covers a foreground pixel.
//
// Cells falling outside the image contribute nothing. Because the anchor is
// always active, the result is a superset of the input. The operation is
// repeated iterations times; iterations < 1 returns a copy of the input.
func Dilate(mask *image.Gray, se StructuringElement, iterations int) *image.Gray {
	out := cloneMask(mask)
	for i := 0; i < iterations; i++ {
		out = morph(out, se, true)
	}
	return out
}

// Erode shrinks the foreground of mask: a pixel stays set only when every
// active cell of se that lands inside the image covers a foreground pixel.
//
// Cells falling outside the image never erode, so foreground touching the
// border is not eaten away from that side.
func Erode(mask *image.Gray, se StructuringElement, iterations int) *image.Gray {
	out := cloneMask(mask)
	for i := 0; i < iterations; i++ {
		out = morph(out, se, false)
	}
	return out
}

// Close performs a morphological closing: iterations dilations followed by
// iterations erosions. It bridges gaps narrower than the element while
// leaving the overall shape in place.
func Close(mask *image.Gray, se StructuringElement, iterations int) *image.Gray {
	return Erode(Dilate(mask, se, iterations), se, iterations)
}

// morph applies one dilation (grow=true) or erosion (grow=false) pass.
func morph(src *image.Gray, se StructuringElement, grow bool) *image.Gray {
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hit := !grow
			for _, o := range se.Offsets {
				px, py := x+o.X, y+o.Y
				if px < 0 || px >= width || py < 0 || py >= height {
					continue
				}
				on := src.Pix[py*src.Stride+px] != 0
				if grow && on {
					hit = true
					break
				}
				if !grow && !on {
					hit = false
					break
				}
			}
			if hit {
				dst.Pix[y*dst.Stride+x] = MaskOn
			}
		}
	}

	return dst
}

// cloneMask copies mask into a fresh buffer with origin (0,0), normalizing
// every non-zero pixel to MaskOn.
func cloneMask(mask *image.Gray) *image.Gray {
	bounds := mask.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if mask.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y != 0 {
				out.Pix[y*out.Stride+x] = MaskOn
			}
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
