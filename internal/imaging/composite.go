package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// Highlight is the color foreground pixels are painted with: full-intensity
// yellow (red and green at maximum, blue at zero).
var Highlight = color.NRGBA{R: 255, G: 255, B: 0, A: 255}

// Paint returns an opaque black image the size of mask with every foreground
// pixel set to c.
func Paint(mask *image.Gray, c color.NRGBA) *image.NRGBA {
	bounds := mask.Bounds()
	out := imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{A: 255})

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if mask.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y != 0 {
				out.SetNRGBA(x, y, c)
			}
		}
	}

	return out
}

// BinarizeNonBlack forces every pixel that is not exactly black to white.
//
// This removes the intermediate grays that area-averaging leaves along the
// edges of a shape, so the result holds exactly two colors.
func BinarizeNonBlack(img image.Image) *image.NRGBA {
	src := clone.AsRGBA(img)
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()
	out := imaging.New(width, height, color.NRGBA{A: 255})
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < width; x++ {
			if row[x*4] != 0 || row[x*4+1] != 0 || row[x*4+2] != 0 {
				out.SetNRGBA(x, y, white)
			}
		}
	}

	return out
}

// ToGray converts img to a single channel using ITU-R BT.601 luma weights
// (0.299*R + 0.587*G + 0.114*B). Black maps to 0 and white to 255.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gray.Pix[y*gray.Stride+x] = grayValue(img, bounds.Min.X+x, bounds.Min.Y+y)
		}
	}

	return gray
}

// grayValue computes the BT.601 luma of one pixel in 16.16 fixed point,
// rounding to nearest.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	lum := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
	return uint8(lum)
}
