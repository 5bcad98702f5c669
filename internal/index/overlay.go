package index

import (
	"strconv"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/kml"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
)

// FromOverlays builds one tile record per overlay element
func FromOverlays(overlays []kml.Overlay, naming tile.Naming) ([]tile.Record, error) {
	records := make([]tile.Record, 0, len(overlays))

	for _, overlay := range overlays {
		record, err := fromOverlay(overlay, naming)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func fromOverlay(overlay kml.Overlay, naming tile.Naming) (tile.Record, error) {
	var record tile.Record
	malformed := func(field string, reason string) error {
		return &tile.MalformedRecordError{Element: overlay.String(), Field: field, Reason: reason}
	}

	image, ok := overlay.Field("name")
	if !ok || image == "" {
		return record, malformed("name", "is missing")
	}
	id, err := naming.ID(image)
	if err != nil {
		return record, malformed("name", err.Error())
	}

	drawOrderText, ok := overlay.Field("drawOrder")
	if !ok {
		return record, malformed("drawOrder", "is missing")
	}
	drawOrder, err := strconv.Atoi(drawOrderText)
	if err != nil {
		return record, malformed("drawOrder", "is not an integer: '"+drawOrderText+"'")
	}

	if !overlay.HasBox() {
		return record, malformed("LatLonBox", "is missing")
	}

	var bounds [4]float64
	for i, field := range []string{"north", "south", "east", "west"} {
		text, ok := overlay.BoxField(field)
		if !ok {
			return record, malformed("LatLonBox/"+field, "is missing")
		}
		bounds[i], err = strconv.ParseFloat(text, 64)
		if err != nil {
			return record, malformed("LatLonBox/"+field, "is not a number: '"+text+"'")
		}
	}

	// rotation is optional in KML and defaults to 0
	rotation := 0.0
	if text, ok := overlay.BoxField("rotation"); ok && text != "" {
		rotation, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return record, malformed("LatLonBox/rotation", "is not a number: '"+text+"'")
		}
	}

	record = tile.Record{
		ID:        id,
		Image:     image,
		DrawOrder: drawOrder,
		North:     bounds[0],
		South:     bounds[1],
		East:      bounds[2],
		West:      bounds[3],
		Rotation:  rotation,
	}

	if err = record.Valid(); err != nil {
		return record, malformed("", err.Error())
	}

	return record, nil
}
