package validate

import (
	"strings"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/pkg/errors"
)

// Archive is the part of a KMZ archive the checks need
type Archive interface {
	Entries() []string
	Has(name string) bool
}

// Document validates that the archive contains the overlay document
func Document(archive Archive, document string) error {
	if !archive.Has(document) {
		return errors.Wrapf(tile.ErrNotFound, "overlay document '%s' is missing", document)
	}
	return nil
}

// ImageFolder validates that the archive contains at least one entry in the image folder
func ImageFolder(archive Archive, folder string) error {
	prefix := strings.TrimSuffix(folder, "/") + "/"
	for _, entry := range archive.Entries() {
		if strings.HasPrefix(entry, prefix) && entry != prefix {
			return nil
		}
	}
	return errors.Wrapf(tile.ErrNotFound, "image folder '%s' is missing or empty", folder)
}

// Images validates that the image of every tile is in the archive. entry maps a tile to
// its archive entry.
func Images(archive Archive, records []tile.Record, entry func(tile.Record) string) error {
	var missing []string
	for _, r := range records {
		if !archive.Has(entry(r)) {
			missing = append(missing, r.ID+" ("+entry(r)+")")
		}
	}

	if len(missing) > 0 {
		return errors.Wrapf(tile.ErrNotFound, "%d tile images are missing: %s", len(missing), strings.Join(missing, ", "))
	}
	return nil
}
