package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaskOn is the pixel value marking foreground in a binary mask.
const MaskOn = 255

// HSV is a color in 8-bit hue-saturation-value form.
//
//   - H: hue 0-179 (degrees / 2; 0=red, 30=yellow, 60=green, 120=blue)
//   - S: saturation 0-255 (0=gray, 255=vivid)
//   - V: value 0-255 (0=black, 255=full brightness)
type HSV struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	V uint8 `json:"v"`
}

func (c HSV) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.H, c.S, c.V)
}

// HSVRange is an inclusive per-channel threshold.
type HSVRange struct {
	Lower HSV `json:"lower"`
	Upper HSV `json:"upper"`
}

// Contains reports whether every channel of c lies within [Lower, Upper].
func (r HSVRange) Contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

func (r HSVRange) String() string {
	return fmt.Sprintf("%s-%s", r.Lower, r.Upper)
}

// ToHSV converts a color to 8-bit HSV.
//
// Achromatic colors (grays, black, white) have H=0 and S=0. A fully
// transparent pixel converts to black.
func ToHSV(c color.Color) HSV {
	cf, _ := colorful.MakeColor(c)
	h, s, v := cf.Hsv()

	hue := int(math.Round(h / 2))
	if hue >= 180 {
		hue -= 180
	}

	return HSV{
		H: uint8(hue),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}

// InRange thresholds an image in HSV space.
//
// The returned mask has the same dimensions as img (with origin at 0,0) and is
// MaskOn wherever the pixel's HSV value lies within r, 0 elsewhere.
func InRange(img image.Image, r HSVRange) *image.Gray {
	src := clone.AsRGBA(img)
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()
	mask := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			hsv := ToHSV(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
			if r.Contains(hsv) {
				mask.Pix[y*mask.Stride+x] = MaskOn
			}
		}
	}

	return mask
}

// CountOn returns the number of foreground pixels in a mask.
func CountOn(mask *image.Gray) int {
	bounds := mask.Bounds()
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return n
}
