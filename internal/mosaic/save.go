package mosaic

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Save encodes the image by the extension of the given path (jpg, png, tif or bmp)
func Save(path string, img image.Image, quality int) error {
	encode, err := encoderFor(path, quality)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Unable to create %s", path)
	}

	err = encode(out, img)
	if err != nil {
		out.Close()
		return errors.Wrapf(err, "Unable to encode %s", path)
	}

	err = out.Close()
	if err != nil {
		return errors.Wrapf(err, "Unable to close %s", path)
	}

	return nil
}

func encoderFor(path string, quality int) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		}, nil
	case ".png":
		return png.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	}
	return nil, errors.Errorf("unsupported output format '%s'", filepath.Ext(path))
}
