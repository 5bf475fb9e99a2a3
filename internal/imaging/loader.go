package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// LoadError reports that a source image could not be used.
//
// It covers a missing or unreadable file, content that is not a supported
// image format, and images with zero width or height.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// StorageError reports that a result image could not be written.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to save image %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ErrEmptyImage is wrapped by LoadError when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image has zero dimensions")

// Load reads and decodes an image file.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF, and WebP. EXIF orientation
// is applied so photographs come out upright.
//
// # Errors
//
//   - Returns *LoadError if the file does not exist or cannot be read
//   - Returns *LoadError if the content is not a supported image
//   - Returns *LoadError wrapping ErrEmptyImage for a 0-pixel image
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if img.Bounds().Empty() {
		return nil, &LoadError{Path: path, Err: ErrEmptyImage}
	}

	return img, nil
}

// Save encodes img to path. The format is chosen from the file extension
// (".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff").
//
// Any failure, including an unsupported extension, is returned as *StorageError.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}
