package config

import (
	"github.com/markmelnic/Light-Pollution-Mapper/internal/index"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
)

// Fixed names inside a KMZ archive and in the working directory
const (
	DefaultDocument    = "doc.kml"
	DefaultImageFolder = "files"
	DefaultCache       = "kml_index.csv"
	DefaultMosaic      = "map.jpg"
)

// Config holds the settings shared by all commands
type Config struct {
	// Archive is the KMZ file to read, empty to discover it in WorkDir
	Archive     string
	WorkDir     string
	Document    string
	ImageFolder string
	Cache       string
	Naming      tile.Naming
	StrictCache bool
}

// Default returns the configuration matching the layout of the supported KMZ exports
func Default() Config {
	return Config{
		WorkDir:     ".",
		Document:    DefaultDocument,
		ImageFolder: DefaultImageFolder,
		Cache:       DefaultCache,
		Naming:      tile.DefaultNaming,
	}
}

// CacheValidator returns the validation hook applied to an existing cache file
func (c Config) CacheValidator() index.Validator {
	if c.StrictCache {
		return index.StrictCache
	}
	return index.TrustCache
}
