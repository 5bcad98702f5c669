package kmz

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/pkg/errors"
)

// Extension of the archives Discover looks for
const Extension = ".kmz"

// Archive is an opened KMZ file. It must be closed after use.
type Archive struct {
	Path    string
	reader  *zip.ReadCloser
	entries map[string]*zip.File
}

// Discover returns the single KMZ archive in the given directory. No match is an
// ErrNotFound, more than one match an ErrAmbiguousInput; there is no first-match pick.
func Discover(dir string) (string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "Unable to list directory %s", dir)
	}

	var candidates []string
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Extension) {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, entry.Name()))
	}

	switch len(candidates) {
	case 0:
		return "", errors.Wrapf(tile.ErrNotFound, "no *%s archive in %s", Extension, dir)
	case 1:
		return candidates[0], nil
	default:
		sort.Strings(candidates)
		return "", errors.Wrapf(tile.ErrAmbiguousInput, "found %d *%s archives (%s), pass one explicitly", len(candidates), Extension, strings.Join(candidates, ", "))
	}
}

// Open opens the KMZ archive at the given path
func Open(path string) (*Archive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(tile.ErrNotFound, "archive %s", path)
		}
		return nil, errors.Wrapf(err, "Unable to open archive %s", path)
	}

	entries := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		entries[f.Name] = f
	}

	sigolo.Debugf("Opened archive %s with %d entries", path, len(entries))

	return &Archive{
		Path:    path,
		reader:  reader,
		entries: entries,
	}, nil
}

// Entries lists the names of all archive entries in archive order
func (a *Archive) Entries() []string {
	names := make([]string, len(a.reader.File))
	for i, f := range a.reader.File {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the archive contains the given entry
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// Open opens the named entry for reading
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, errors.Wrapf(tile.ErrNotFound, "entry '%s' in archive %s", name, a.Path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open entry '%s' in archive %s", name, a.Path)
	}

	return rc, nil
}

// ReadFile reads the whole named entry
func (a *Archive) ReadFile(name string) ([]byte, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read entry '%s' in archive %s", name, a.Path)
	}

	return data, nil
}

// Close releases the archive file
func (a *Archive) Close() error {
	return a.reader.Close()
}
