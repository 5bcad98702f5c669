package mosaic

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource resolves the image of a tile
type ImageSource interface {
	Image(r tile.Record) (image.Image, error)
}

// ArchiveImages decodes tile images stored in a folder of an archive
type ArchiveImages struct {
	Archive interface {
		Open(name string) (io.ReadCloser, error)
	}
	Folder string
}

// Entry returns the archive entry holding the image of the given tile
func (a ArchiveImages) Entry(r tile.Record) string {
	return path.Join(a.Folder, r.Image)
}

func (a ArchiveImages) Image(r tile.Record) (image.Image, error) {
	entry := a.Entry(r)

	rc, err := a.Archive.Open(entry)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to decode image '%s'", entry)
	}

	sigolo.Tracef("Decoded %s image '%s' (%dx%d)", format, entry, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// ComposeGlobe stitches the tiles of every row left to right and then the rows top to
// bottom. Only the images of one row are held at a time.
func ComposeGlobe(m grid.Matrix, src ImageSource, policy Policy) (*image.RGBA, error) {
	if len(m.Rows) == 0 {
		return nil, errors.New("matrix has no rows")
	}

	rowImages := make([]image.Image, len(m.Rows))
	for i, row := range m.Rows {
		rowImage, err := composeRow(row, src, policy)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d (north %v, south %v)", i, row.North, row.South)
		}

		sigolo.Debugf("Stitched row %d with %d tiles to %dx%d", i, len(row.Tiles), rowImage.Bounds().Dx(), rowImage.Bounds().Dy())
		rowImages[i] = rowImage
	}

	return VerticalStitch(rowImages)
}

func composeRow(row grid.Row, src ImageSource, policy Policy) (*image.RGBA, error) {
	images := make([]image.Image, len(row.Tiles))
	for i, t := range row.Tiles {
		img, err := src.Image(t)
		if err != nil {
			return nil, errors.Wrapf(err, "tile '%s'", t.ID)
		}
		images[i] = img
	}

	rowImage, err := HorizontalStitch(images, policy)
	if err != nil {
		var mismatch *tile.DimensionMismatchError
		if errors.As(err, &mismatch) {
			return nil, errors.Wrapf(err, "tile '%s'", row.Tiles[mismatch.Index].ID)
		}
		return nil, err
	}

	return rowImage, nil
}
