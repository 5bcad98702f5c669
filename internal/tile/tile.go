package tile

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Record is one geo-referenced raster tile of a KMZ overlay set
type Record struct {
	ID        string
	Image     string
	DrawOrder int
	North     float64
	South     float64
	East      float64
	West      float64
	Rotation  float64 // carried as metadata only, never applied
}

// Bound returns the tile's rectangle, min is the south west corner
func (r Record) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.West, r.South},
		Max: orb.Point{r.East, r.North},
	}
}

// Valid checks the north > south and east > west invariants
func (r Record) Valid() error {
	if !(r.North > r.South) {
		return errors.Errorf("north %v must be greater than south %v", r.North, r.South)
	}
	if !(r.East > r.West) {
		return errors.Errorf("east %v must be greater than west %v", r.East, r.West)
	}
	return nil
}

// Naming describes how a tile ID is cut out of its image reference.
//
// Overlay names of the supported KMZ exports carry a fixed 23 character prefix and a
// 4 character file extension (".jpg"), the remainder is the tile's ID.
type Naming struct {
	Prefix int
	Suffix int
}

// DefaultNaming is the naming convention of the KMZ exports this tool was built for
var DefaultNaming = Naming{Prefix: 23, Suffix: 4}

// ID derives the tile ID from the given image reference
func (n Naming) ID(imageRef string) (string, error) {
	if n.Prefix < 0 || n.Suffix < 0 {
		return "", errors.Errorf("invalid naming convention (prefix %d, suffix %d)", n.Prefix, n.Suffix)
	}

	runes := []rune(imageRef)
	if len(runes) <= n.Prefix+n.Suffix {
		return "", errors.Errorf("name '%s' leaves no ID after %d prefix and %d suffix characters", imageRef, n.Prefix, n.Suffix)
	}

	return string(runes[n.Prefix : len(runes)-n.Suffix]), nil
}
