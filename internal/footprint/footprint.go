package footprint

import (
	"io"
	"os"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Collection builds one polygon feature per tile, carrying its record fields and its
// position in the matrix
func Collection(m grid.Matrix) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for rowIndex, row := range m.Rows {
		for colIndex, t := range row.Tiles {
			feature := geojson.NewFeature(t.Bound().ToPolygon())
			feature.ID = t.ID
			feature.Properties["index"] = t.ID
			feature.Properties["image"] = t.Image
			feature.Properties["draw_order"] = t.DrawOrder
			feature.Properties["rotation"] = t.Rotation
			feature.Properties["row"] = rowIndex
			feature.Properties["column"] = colIndex

			fc.Append(feature)
		}
	}

	return fc
}

// Write writes the footprints of all tiles as GeoJSON
func Write(m grid.Matrix, writer io.Writer) error {
	bytes, err := Collection(m).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal footprints")
	}

	_, err = writer.Write(bytes)
	return err
}

// WriteFile writes the footprints of all tiles as GeoJSON file
func WriteFile(m grid.Matrix, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", path)
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "Unable to close file handle for GeoJSON file %s", path)
		}
	}()

	sigolo.Debugf("Writing %d footprints to %s", m.Len(), path)
	return Write(m, file)
}
