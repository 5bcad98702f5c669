package locator

import (
	"testing"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/testutil"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/paulmach/orb"
)

func record(id string, north, south, east, west float64) tile.Record {
	return tile.Record{ID: id, Image: id + ".jpg", North: north, South: south, East: east, West: west}
}

// 2x2 grid plus a detached tile further east in the lower row
func matrix() grid.Matrix {
	return grid.Assemble([]tile.Record{
		record("A", 52.4, 52.3, 5.0, 4.8),
		record("B", 52.4, 52.3, 5.2, 5.0),
		record("C", 52.3, 52.2, 5.0, 4.8),
		record("D", 52.3, 52.2, 5.2, 5.0),
		record("E", 52.3, 52.2, 6.0, 5.8),
	})
}

func locateID(m grid.Matrix, lat, lon float64) string {
	r, ok := Locate(m, orb.Point{lon, lat})
	if !ok {
		return ""
	}
	return r.ID
}

func TestLocate_interiorPoint(t *testing.T) {
	m := matrix()

	testutil.AssertEqual(t, "A", locateID(m, 52.35, 4.9))
	testutil.AssertEqual(t, "B", locateID(m, 52.35, 5.1))
	testutil.AssertEqual(t, "C", locateID(m, 52.25, 4.9))
	testutil.AssertEqual(t, "D", locateID(m, 52.25, 5.1))
	testutil.AssertEqual(t, "E", locateID(m, 52.25, 5.9))
}

func TestLocate_westEdgeTieBreak(t *testing.T) {
	testutil.AssertEqual(t, "B", locateID(matrix(), 52.35, 5.0))
}

func TestLocate_southEdgeTieBreak(t *testing.T) {
	testutil.AssertEqual(t, "A", locateID(matrix(), 52.3, 4.9))
}

func TestLocate_outerEdgesInclusive(t *testing.T) {
	m := matrix()

	testutil.AssertEqual(t, "A", locateID(m, 52.4, 4.9))  // north edge of topmost row
	testutil.AssertEqual(t, "B", locateID(m, 52.35, 5.2)) // east edge of easternmost tile
	testutil.AssertEqual(t, "C", locateID(m, 52.2, 4.8))  // south west corner
}

func TestLocate_notFound(t *testing.T) {
	m := matrix()

	testutil.AssertEqual(t, "", locateID(m, 60.0, 4.9))
	testutil.AssertEqual(t, "", locateID(m, 52.1, 4.9))
	testutil.AssertEqual(t, "", locateID(m, 52.35, 4.7))
	testutil.AssertEqual(t, "", locateID(m, 52.35, 5.3))
	testutil.AssertEqual(t, "", locateID(m, 52.25, 5.5)) // gap between D and E
	testutil.AssertEqual(t, "", locateID(m, 52.35, 5.9)) // E's column, but A/B row
}

func TestLocate_emptyMatrix(t *testing.T) {
	_, ok := Locate(grid.Matrix{}, orb.Point{0, 0})

	testutil.AssertFalse(t, ok)
}

func TestLocate_adjacentTilesInOneRow(t *testing.T) {
	m := grid.Assemble([]tile.Record{
		record("A", 52.4, 52.3, 5.0, 4.8),
		record("B", 52.4, 52.3, 5.2, 5.0),
	})

	testutil.AssertEqual(t, "A", locateID(m, 52.35, 4.9))
	testutil.AssertEqual(t, "B", locateID(m, 52.35, 5.0))
	testutil.AssertEqual(t, "", locateID(m, 60.0, 4.9))
}
