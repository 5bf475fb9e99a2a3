// Package extract implements the second pipeline stage: keeping only the part
// of a highlight-colored silhouette that is connected to an anchor edge, and
// reducing it to a small binary image.
//
// # Algorithm Overview
//
//  1. Re-threshold: select the highlight-yellow pixels (HighlightRange)
//  2. Gap closing: morphological closing with an elliptical element
//  3. Seeding: a SeedPolicy picks start pixels on the closed mask
//     (BottomRow by default: where the rope enters the frame)
//  4. Flood fill: 4-connected, mask-only fill from every seed into a
//     buffer padded by one pixel on each side
//  5. Trim and repaint: drop the padding, paint reached pixels yellow
//  6. Downsample: area-average to finalSize x finalSize
//  7. Binarize: every non-black pixel becomes white, then convert to gray
//
// # Reachability
//
// Seeds are evaluated against the closed mask, never against fill results,
// and the fill only flows through closed-mask foreground. A blob that has no
// path to a seed is therefore absent from the output, regardless of size.
// Because fills only mark pixels in the fill buffer, the order in which seeds
// are processed does not change the result.
//
// # Output
//
// The output is an *image.Gray of finalSize x finalSize containing only the
// values 0 and 255.
package extract
