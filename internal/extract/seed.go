package extract

import (
	"fmt"
	"image"
)

// SeedPolicy chooses the flood fill start pixels on a closed mask.
//
// Implementations must only return points that are foreground in mask.
type SeedPolicy interface {
	Seeds(mask *image.Gray) []image.Point
}

// Edge identifies one side of an image.
type Edge int

const (
	Bottom Edge = iota
	Top
	Left
	Right
)

func (e Edge) String() string {
	switch e {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge converts a name such as "bottom" into an Edge.
func ParseEdge(name string) (Edge, error) {
	switch name {
	case "bottom", "":
		return Bottom, nil
	case "top":
		return Top, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Bottom, fmt.Errorf("unknown edge: %s", name)
	}
}

// EdgeRow seeds from every foreground pixel along one image edge.
type EdgeRow struct {
	Edge Edge
}

// BottomRow seeds from every foreground pixel on row height-1: the rope is
// assumed to enter the frame at the bottom.
var BottomRow = EdgeRow{Edge: Bottom}

// Seeds returns the foreground pixels on the configured edge, in scan order.
func (p EdgeRow) Seeds(mask *image.Gray) []image.Point {
	bounds := mask.Bounds()
	var line []image.Point

	switch p.Edge {
	case Top:
		line = rowPoints(bounds, bounds.Min.Y)
	case Left:
		line = columnPoints(bounds, bounds.Min.X)
	case Right:
		line = columnPoints(bounds, bounds.Max.X-1)
	default:
		line = rowPoints(bounds, bounds.Max.Y-1)
	}

	seeds := make([]image.Point, 0, len(line))
	for _, pt := range line {
		if mask.GrayAt(pt.X, pt.Y).Y != 0 {
			seeds = append(seeds, pt)
		}
	}
	return seeds
}

// Points seeds from an explicit list of pixels; background or out-of-bounds
// points are skipped.
type Points []image.Point

// Seeds returns the listed points that are foreground in mask.
func (p Points) Seeds(mask *image.Gray) []image.Point {
	bounds := mask.Bounds()
	seeds := make([]image.Point, 0, len(p))
	for _, pt := range p {
		if pt.In(bounds) && mask.GrayAt(pt.X, pt.Y).Y != 0 {
			seeds = append(seeds, pt)
		}
	}
	return seeds
}

func rowPoints(bounds image.Rectangle, y int) []image.Point {
	pts := make([]image.Point, 0, bounds.Dx())
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

func columnPoints(bounds image.Rectangle, x int) []image.Point {
	pts := make([]image.Point, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}
