package extract

import (
	"image"

	"github.com/ironsheep/rope-path-filter/internal/imaging"
)

// NewFillBuffer allocates an empty fill result for mask: two pixels wider and
// taller, so mask pixel (x, y) maps to buffer pixel (x+1, y+1) and the fill
// never has to special-case the image border.
func NewFillBuffer(mask *image.Gray) *image.Gray {
	bounds := mask.Bounds()
	return image.NewGray(image.Rect(0, 0, bounds.Dx()+2, bounds.Dy()+2))
}

// FloodFill marks in fill every pixel 4-connected to seed through foreground
// pixels of mask, and returns how many pixels it newly marked.
//
// mask is only read. fill must come from NewFillBuffer(mask); pixels already
// marked in it are treated as done, so repeated calls accumulate a union of
// regions. A seed that is background in mask marks nothing.
func FloodFill(mask, fill *image.Gray, seed image.Point) int {
	bounds := mask.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	isOn := func(x, y int) bool {
		return mask.Pix[(y-bounds.Min.Y)*mask.Stride+(x-bounds.Min.X)] != 0
	}

	sx, sy := seed.X-bounds.Min.X, seed.Y-bounds.Min.Y
	if sx < 0 || sx >= width || sy < 0 || sy >= height {
		return 0
	}

	marked := 0
	stack := []image.Point{{X: sx, Y: sy}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		idx := (p.Y+1)*fill.Stride + p.X + 1
		if fill.Pix[idx] != 0 || !isOn(p.X+bounds.Min.X, p.Y+bounds.Min.Y) {
			continue
		}

		fill.Pix[idx] = imaging.MaskOn
		marked++

		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}

	return marked
}

// FillFromSeeds runs FloodFill from each seed into one fresh padded buffer.
func FillFromSeeds(mask *image.Gray, seeds []image.Point) *image.Gray {
	fill := NewFillBuffer(mask)
	for _, seed := range seeds {
		FloodFill(mask, fill, seed)
	}
	return fill
}

// TrimBorder removes the one-pixel padding of a fill buffer, returning a mask
// with the original dimensions and origin (0,0).
func TrimBorder(fill *image.Gray) *image.Gray {
	bounds := fill.Bounds()
	width, height := bounds.Dx()-2, bounds.Dy()-2
	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := fill.Pix[(y+1)*fill.Stride+1 : (y+1)*fill.Stride+1+width]
		copy(out.Pix[y*out.Stride:], src)
	}
	return out
}
