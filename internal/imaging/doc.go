// Package imaging provides the image primitives used by the rope path pipeline.
//
// This package implements loading and saving, HSV thresholding, resizing,
// binary morphology, and the small compositing helpers that turn masks back
// into images. All operations work with standard Go image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Masks
//
// A binary mask is an *image.Gray whose pixels are either 0 (background) or
// MaskOn (255, foreground). Mask bounds always start at (0,0). Functions in
// this package that accept a mask treat any non-zero pixel as foreground, and
// functions that produce a mask only ever write 0 or MaskOn.
//
// # HSV Convention
//
// HSV values use the 8-bit convention common to computer vision libraries:
//   - H: hue in [0, 180), i.e. degrees divided by two
//   - S: saturation in [0, 255]
//   - V: value in [0, 255]
//
// Threshold bounds in HSVRange are inclusive on both ends.
//
// # Error Handling
//
// Failures to read a source image are reported as *LoadError and failures to
// write a destination as *StorageError. Use errors.As to tell them apart.
// Every other operation in this package is total over non-empty images.
//
// # Thread Safety
//
// All functions are stateless and allocate fresh output buffers. They can be
// called concurrently on different images.
package imaging
