package metajson

import (
	"encoding/json"
	"math"
	"os"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/pkg/errors"
)

// Bounds is a geographic rectangle in degrees
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Row describes one row of the mosaic
type Row struct {
	North float64  `json:"north"`
	South float64  `json:"south"`
	Tiles []string `json:"tiles"`
}

// MetaJSON describes a composed mosaic
type MetaJSON struct {
	Image     string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	TileCount int     `json:"tileCount"`
	Bounds    Bounds  `json:"bounds"`
	Rows      []Row   `json:"rows"`
	Policy    string  `json:"heightPolicy"`
	Rotation  float64 `json:"maxRotation"` // rotations are not applied to the image
}

// New builds the description of the mosaic image composed from the given matrix
func New(image string, width, height int, m grid.Matrix, policy string) MetaJSON {
	bound := m.Bound()

	meta := MetaJSON{
		Image:     image,
		Width:     width,
		Height:    height,
		TileCount: m.Len(),
		Bounds: Bounds{
			North: bound.Top(),
			South: bound.Bottom(),
			East:  bound.Right(),
			West:  bound.Left(),
		},
		Rows:   make([]Row, len(m.Rows)),
		Policy: policy,
	}

	for i, row := range m.Rows {
		ids := make([]string, len(row.Tiles))
		for j, t := range row.Tiles {
			ids[j] = t.ID
			if math.Abs(t.Rotation) > math.Abs(meta.Rotation) {
				meta.Rotation = t.Rotation
			}
		}
		meta.Rows[i] = Row{North: row.North, South: row.South, Tiles: ids}
	}

	return meta
}

// Write meta json to the given path
func Write(path string, meta MetaJSON) error {
	bytes, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return errors.Wrap(err, "Unable to marshal mosaic metadata")
	}

	err = os.WriteFile(path, bytes, 0o644)
	if err != nil {
		return errors.Wrapf(err, "Unable to write %s", path)
	}

	return nil
}

// Read meta json from given path
func Read(path string) (MetaJSON, error) {
	var meta MetaJSON

	bytes, err := os.ReadFile(path)
	if err != nil {
		return meta, errors.Wrapf(err, "Unable to read %s", path)
	}

	err = json.Unmarshal(bytes, &meta)
	if err != nil {
		return meta, errors.Wrapf(err, "Unable to parse %s", path)
	}

	return meta, nil
}
