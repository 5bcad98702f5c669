package index

import (
	"reflect"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/kml"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
	"github.com/pkg/errors"
)

// Source supplies the overlay elements of the source document
type Source interface {
	Overlays() ([]kml.Overlay, error)
}

// DocumentSource parses an overlay document read from an archive
type DocumentSource struct {
	Archive  interface{ ReadFile(name string) ([]byte, error) }
	Document string
}

func (s DocumentSource) Overlays() ([]kml.Overlay, error) {
	data, err := s.Archive.ReadFile(s.Document)
	if err != nil {
		return nil, err
	}

	overlays, err := kml.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "document '%s'", s.Document)
	}

	return overlays, nil
}

// ErrRejected marks a cache refused by a Validator. Load rebuilds a rejected cache, any
// other validation error is returned as is.
var ErrRejected = errors.New("cache rejected")

// Cache is the content of an existing cache file. Err is set if the file couldn't be read,
// Header and Records are empty then.
type Cache struct {
	Header  []string
	Records []tile.Record
	Err     error
}

// Validator inspects an existing cache. An error wrapping ErrRejected discards the cache,
// the records are then parsed from the source and persisted again.
type Validator func(cache Cache, src Source) error

// TrustCache accepts every readable cache without inspecting it. An existing cache file
// therefore always wins over the source document, even when it is stale. An unreadable
// cache is an error.
func TrustCache(cache Cache, src Source) error {
	return cache.Err
}

// StrictCache rejects unreadable caches and checks the header, the invariants of every
// record and that the cache has as many records as the source document has overlays.
func StrictCache(cache Cache, src Source) error {
	if cache.Err != nil {
		return errors.Wrapf(ErrRejected, "%s", cache.Err.Error())
	}

	if !reflect.DeepEqual(cache.Header, Columns) {
		return errors.Wrapf(ErrRejected, "header %v does not match %v", cache.Header, Columns)
	}

	for i, record := range cache.Records {
		if err := record.Valid(); err != nil {
			return errors.Wrapf(ErrRejected, "record %d (%s): %s", i+1, record.ID, err.Error())
		}
	}

	overlays, err := src.Overlays()
	if err != nil {
		return err
	}
	if len(overlays) != len(cache.Records) {
		return errors.Wrapf(ErrRejected, "cache has %d records but the document has %d overlays", len(cache.Records), len(overlays))
	}

	return nil
}

// Load returns the tile records from the cache at cachePath if that file exists and passes
// validate, otherwise they're parsed from the source and the cache is written.
func Load(src Source, cachePath string, naming tile.Naming, validate Validator) ([]tile.Record, error) {
	if validate == nil {
		validate = TrustCache
	}

	if utils.IsFile(cachePath) {
		var cache Cache
		cache.Header, cache.Records, cache.Err = readCache(cachePath)

		err := validate(cache, src)
		if err == nil {
			sigolo.Debugf("Using cached tile index %s", cachePath)
			return cache.Records, nil
		}
		if !errors.Is(err, ErrRejected) {
			return nil, err
		}

		sigolo.Warnf("Discarding cached tile index %s: %s", cachePath, err.Error())
	}

	return Rebuild(src, cachePath, naming)
}

// Rebuild parses the records from the source and (over)writes the cache
func Rebuild(src Source, cachePath string, naming tile.Naming) ([]tile.Record, error) {
	overlays, err := src.Overlays()
	if err != nil {
		return nil, err
	}

	records, err := FromOverlays(overlays, naming)
	if err != nil {
		return nil, err
	}

	err = Persist(cachePath, records)
	if err != nil {
		return nil, err
	}

	return records, nil
}
