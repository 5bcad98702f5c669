package mosaic

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/testutil"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/pkg/errors"
)

var white = color.RGBA{255, 255, 255, 255}

func filled(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// sizedImages serves a solid image per tile, sized by ID
type sizedImages map[string][2]int

func (s sizedImages) Image(r tile.Record) (image.Image, error) {
	size, ok := s[r.ID]
	if !ok {
		return nil, errors.Wrapf(tile.ErrNotFound, "image of %s", r.ID)
	}
	return filled(size[0], size[1], white), nil
}

func TestHorizontalStitch(t *testing.T) {
	// Arrange
	red := color.RGBA{255, 0, 0, 255}
	images := []image.Image{filled(10, 5, white), filled(20, 5, red)}

	// Act
	img, err := HorizontalStitch(images, FailOnMismatch)

	// Assert
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, image.Rect(0, 0, 30, 5), img.Bounds())
	testutil.AssertEqual(t, white, img.RGBAAt(9, 4))
	testutil.AssertEqual(t, red, img.RGBAAt(10, 0))
}

func TestHorizontalStitch_padsToHighestImage(t *testing.T) {
	img, err := HorizontalStitch([]image.Image{filled(10, 5, white), filled(10, 8, white)}, PadToFit)

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, image.Rect(0, 0, 20, 8), img.Bounds())
	testutil.AssertEqual(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 7))
	testutil.AssertEqual(t, white, img.RGBAAt(10, 7))
}

func TestHorizontalStitch_failsOnMismatch(t *testing.T) {
	_, err := HorizontalStitch([]image.Image{filled(10, 5, white), filled(10, 8, white)}, FailOnMismatch)

	var mismatch *tile.DimensionMismatchError
	testutil.AssertTrue(t, errors.As(err, &mismatch))
	testutil.AssertEqual(t, 1, mismatch.Index)
	testutil.AssertEqual(t, 8, mismatch.Got)
	testutil.AssertEqual(t, 5, mismatch.Want)
}

func TestHorizontalStitch_offsetBounds(t *testing.T) {
	sub := filled(20, 20, white).SubImage(image.Rect(10, 10, 20, 15))

	img, err := HorizontalStitch([]image.Image{sub}, FailOnMismatch)

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, image.Rect(0, 0, 10, 5), img.Bounds())
	testutil.AssertEqual(t, white, img.RGBAAt(0, 0))
}

func TestVerticalStitch(t *testing.T) {
	img, err := VerticalStitch([]image.Image{filled(10, 5, white), filled(30, 7, white)})

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, image.Rect(0, 0, 30, 12), img.Bounds())
	testutil.AssertEqual(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(29, 0))
	testutil.AssertEqual(t, white, img.RGBAAt(29, 11))
}

func TestStitch_empty(t *testing.T) {
	_, err := HorizontalStitch(nil, PadToFit)
	testutil.AssertNotNil(t, err)

	_, err = VerticalStitch(nil)
	testutil.AssertNotNil(t, err)
}

func TestComposeGlobe(t *testing.T) {
	// Arrange
	m := grid.Assemble([]tile.Record{
		{ID: "a", North: 2, South: 1, East: 1, West: 0},
		{ID: "b", North: 2, South: 1, East: 2, West: 1},
		{ID: "c", North: 1, South: 0, East: 1, West: 0},
		{ID: "d", North: 1, South: 0, East: 2, West: 1},
		{ID: "e", North: 1, South: 0, East: 3, West: 2},
	})
	src := sizedImages{
		"a": {10, 6}, "b": {12, 6},
		"c": {10, 4}, "d": {10, 4}, "e": {5, 4},
	}

	// Act
	img, err := ComposeGlobe(m, src, PadToFit)

	// Assert
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, 25, img.Bounds().Dx()) // max(22, 25)
	testutil.AssertEqual(t, 10, img.Bounds().Dy()) // 6 + 4
}

func TestComposeGlobe_dimensionMismatchNamesTile(t *testing.T) {
	// Arrange
	m := grid.Assemble([]tile.Record{
		{ID: "a", North: 2, South: 1, East: 1, West: 0},
		{ID: "b", North: 2, South: 1, East: 2, West: 1},
	})
	src := sizedImages{"a": {10, 6}, "b": {10, 7}}

	// Act
	_, err := ComposeGlobe(m, src, FailOnMismatch)

	// Assert
	var mismatch *tile.DimensionMismatchError
	testutil.AssertTrue(t, errors.As(err, &mismatch))
	testutil.AssertEqual(t, "row 0 (north 2, south 1): tile 'b': horizontal stitch: image 1 has height 7, expected 6", err.Error())
}

func TestComposeGlobe_raggedRowsInFailMode(t *testing.T) {
	// Arrange
	m := grid.Assemble([]tile.Record{
		{ID: "a", North: 2, South: 1, East: 1, West: 0},
		{ID: "b", North: 2, South: 1, East: 2, West: 1},
		{ID: "c", North: 1, South: 0, East: 1, West: 0},
	})
	src := sizedImages{"a": {10, 6}, "b": {10, 6}, "c": {10, 4}}

	// Act
	img, err := ComposeGlobe(m, src, FailOnMismatch)

	// Assert
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, 20, img.Bounds().Dx())
	testutil.AssertEqual(t, 10, img.Bounds().Dy())
}

func TestComposeGlobe_missingImage(t *testing.T) {
	m := grid.Assemble([]tile.Record{{ID: "x", North: 2, South: 1, East: 1, West: 0}})

	_, err := ComposeGlobe(m, sizedImages{}, PadToFit)

	testutil.AssertErrorIs(t, tile.ErrNotFound, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("FAIL")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, FailOnMismatch, p)

	p, err = ParsePolicy("pad")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, PadToFit, p)

	_, err = ParsePolicy("stretch")
	testutil.AssertNotNil(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := filled(4, 3, white)

	testutil.AssertNil(t, Save(filepath.Join(dir, "map.jpg"), img, 90))
	testutil.AssertNil(t, Save(filepath.Join(dir, "map.png"), img, 90))
	testutil.AssertNotNil(t, Save(filepath.Join(dir, "map.gif"), img, 90))
}
