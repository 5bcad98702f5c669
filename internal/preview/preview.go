package preview

import (
	"image"

	"github.com/nfnt/resize"
)

// Build scales the image down to the given height, keeping its aspect ratio. Images that
// are already small enough are returned as they are.
func Build(img image.Image, height uint) image.Image {
	if height == 0 || int(height) >= img.Bounds().Dy() {
		return img
	}

	factor := float64(height) / float64(img.Bounds().Dy())
	width := uint(float64(img.Bounds().Dx()) * factor)
	if width == 0 {
		width = 1
	}

	return resize.Resize(width, height, img, resize.MitchellNetravali)
}
