package mosaic

import (
	"image"
	"strings"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Policy decides what happens to images of unequal size in a stitch
type Policy int

const (
	// PadToFit places every image at the top (resp. left) edge and fills the rest of the
	// canvas black, i.e. each tile is padded to the row's height and each row to the
	// mosaic's width.
	PadToFit Policy = iota
	// FailOnMismatch aborts with a DimensionMismatchError as soon as the heights within a
	// row differ. Rows of unequal width are padded either way.
	FailOnMismatch
)

// ParsePolicy parses "pad" or "fail"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "pad":
		return PadToFit, nil
	case "fail":
		return FailOnMismatch, nil
	}
	return PadToFit, errors.Errorf("unknown height policy '%s', expected 'pad' or 'fail'", s)
}

func (p Policy) String() string {
	if p == FailOnMismatch {
		return "fail"
	}
	return "pad"
}

// HorizontalStitch places the images left to right. The result is as wide as all images
// together and as high as the highest one.
func HorizontalStitch(images []image.Image, policy Policy) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, errors.New("nothing to stitch")
	}

	widths := make([]int, len(images))
	heights := make([]int, len(images))
	for i, img := range images {
		widths[i] = img.Bounds().Dx()
		heights[i] = img.Bounds().Dy()

		if policy == FailOnMismatch && heights[i] != heights[0] {
			return nil, &tile.DimensionMismatchError{Stage: "horizontal", Index: i, Got: heights[i], Want: heights[0]}
		}
	}

	canvas := newCanvas(utils.Sum(widths), utils.Max(heights))

	x := 0
	for _, img := range images {
		paste(canvas, img, image.Point{x, 0})
		x += img.Bounds().Dx()
	}

	return canvas, nil
}

// VerticalStitch places the images top to bottom. The result is as wide as the widest
// image and as high as all images together, narrower images are padded on the right.
func VerticalStitch(images []image.Image) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, errors.New("nothing to stitch")
	}

	widths := make([]int, len(images))
	heights := make([]int, len(images))
	for i, img := range images {
		widths[i] = img.Bounds().Dx()
		heights[i] = img.Bounds().Dy()
	}

	canvas := newCanvas(utils.Max(widths), utils.Sum(heights))

	y := 0
	for _, img := range images {
		paste(canvas, img, image.Point{0, y})
		y += img.Bounds().Dy()
	}

	return canvas, nil
}

// newCanvas creates an opaque black image of the given size
func newCanvas(width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	return canvas
}

// paste draws img with its upper left corner at the given point
func paste(canvas *image.RGBA, img image.Image, upperLeftPoint image.Point) {
	r := image.Rectangle{upperLeftPoint, upperLeftPoint.Add(img.Bounds().Size())}
	draw.Draw(canvas, r, img, img.Bounds().Min, draw.Src)
}
