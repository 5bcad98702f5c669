package grid

import (
	"sort"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/paulmach/orb"
)

// Row holds tiles sharing the exact same north and south edge, ordered west to east
type Row struct {
	North float64
	South float64
	Tiles []tile.Record
}

// Matrix holds the rows of a tile set, ordered north to south. It's built once by
// Assemble and must not be modified afterwards.
type Matrix struct {
	Rows []Row
}

// Assemble partitions the records into rows and orders them. Every record ends up in
// exactly one row.
//
// Tiles are grouped by exact float equality of their north and south edge. The source
// data tiles on exact coordinates; coordinates carrying rounding noise would end up in
// rows of their own.
func Assemble(records []tile.Record) Matrix {
	remaining := make([]tile.Record, len(records))
	copy(remaining, records)

	var rows []Row
	for len(remaining) > 0 {
		pick := remaining[0]

		var members, rest []tile.Record
		for _, r := range remaining {
			if r.North == pick.North && r.South == pick.South {
				members = append(members, r)
			} else {
				rest = append(rest, r)
			}
		}

		sort.SliceStable(members, func(i, j int) bool {
			a, b := members[i], members[j]
			if a.West != b.West {
				return a.West < b.West
			}
			if a.ID != b.ID {
				return a.ID < b.ID
			}
			return a.Image < b.Image
		})

		rows = append(rows, Row{North: pick.North, South: pick.South, Tiles: members})
		remaining = rest
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].North != rows[j].North {
			return rows[i].North > rows[j].North
		}
		return rows[i].South > rows[j].South
	})

	return Matrix{Rows: rows}
}

// Len returns the number of tiles in the matrix
func (m Matrix) Len() int {
	n := 0
	for _, row := range m.Rows {
		n += len(row.Tiles)
	}
	return n
}

// Records returns all tiles row by row
func (m Matrix) Records() []tile.Record {
	records := make([]tile.Record, 0, m.Len())
	for _, row := range m.Rows {
		records = append(records, row.Tiles...)
	}
	return records
}

// Columns returns the largest number of tiles in a row
func (m Matrix) Columns() int {
	columns := 0
	for _, row := range m.Rows {
		if len(row.Tiles) > columns {
			columns = len(row.Tiles)
		}
	}
	return columns
}

// Bound returns the union of all tile rectangles
func (m Matrix) Bound() orb.Bound {
	var bound orb.Bound
	first := true
	for _, row := range m.Rows {
		for _, t := range row.Tiles {
			if first {
				bound = t.Bound()
				first = false
				continue
			}
			bound = bound.Union(t.Bound())
		}
	}
	return bound
}

// Bound returns the rectangle covered by the row
func (r Row) Bound() orb.Bound {
	if len(r.Tiles) == 0 {
		return orb.Bound{}
	}
	bound := r.Tiles[0].Bound()
	for _, t := range r.Tiles[1:] {
		bound = bound.Union(t.Bound())
	}
	return bound
}
