package tile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a required input (archive, archive entry) does not exist
var ErrNotFound = errors.New("not found")

// ErrAmbiguousInput is returned when more than one candidate input matched
var ErrAmbiguousInput = errors.New("ambiguous input")

// MalformedRecordError indicates an overlay element that lacks or has an invalid field
type MalformedRecordError struct {
	Element string // identifying context, e.g. "GroundOverlay #3 (name 'foo.jpg')"
	Field   string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed record %s: %s", e.Element, e.Reason)
	}
	return fmt.Sprintf("malformed record %s: field '%s' %s", e.Element, e.Field, e.Reason)
}

// DimensionMismatchError indicates tiles of unequal height within a row
type DimensionMismatchError struct {
	Stage string // "horizontal"
	Index int    // position of the offending image in the stitched sequence
	Got   int
	Want  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s stitch: image %d has height %d, expected %d", e.Stage, e.Index, e.Got, e.Want)
}
