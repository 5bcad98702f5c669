package locator

import (
	"sort"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/paulmach/orb"
)

// Locate returns the tile of the matrix containing the given point.
//
// Tiles own their south and west edge but not their north and east edge, so a point on an
// edge shared by two tiles belongs to the northern and eastern one respectively. The north
// edge of the topmost row and the east edge of a row's last tile are owned as well.
func Locate(m grid.Matrix, p orb.Point) (tile.Record, bool) {
	lat, lon := p.Lat(), p.Lon()
	rows := m.Rows

	// rows are ordered north to south, so their south edges are descending
	i := sort.Search(len(rows), func(i int) bool {
		return rows[i].South <= lat
	})
	if i == len(rows) {
		return tile.Record{}, false
	}

	row := rows[i]
	if !(lat < row.North || (i == 0 && lat == row.North)) {
		return tile.Record{}, false
	}

	tiles := row.Tiles

	// last tile starting at or west of lon
	j := sort.Search(len(tiles), func(j int) bool {
		return tiles[j].West > lon
	}) - 1
	if j < 0 {
		return tile.Record{}, false
	}

	t := tiles[j]
	if lon < t.East || (j == len(tiles)-1 && lon == t.East) {
		return t, true
	}

	return tile.Record{}, false
}
