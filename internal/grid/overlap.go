package grid

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
)

// Overlap is a pair of tiles whose rectangles share a positive area
type Overlap struct {
	A tile.Record
	B tile.Record
}

// entry is a record in the R-tree, position keeps pairs unique and ordered
type entry struct {
	position int
	record   tile.Record
	rect     rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Overlaps finds all pairs of tiles overlapping each other. Placement in the matrix assumes
// non-overlapping tiles, so every result is a data problem. Tiles sharing only an edge
// don't overlap.
func Overlaps(records []tile.Record) []Overlap {
	tree := rtreego.NewTree(2, 25, 50)

	entries := make([]*entry, 0, len(records))
	for i, r := range records {
		rect, err := rtreego.NewRect(rtreego.Point{r.West, r.South}, []float64{r.East - r.West, r.North - r.South})
		if err != nil {
			sigolo.Debugf("Skipping tile '%s' in overlap check: %s", r.ID, err.Error())
			continue
		}

		e := &entry{position: i, record: r, rect: rect}
		entries = append(entries, e)
		tree.Insert(e)
	}

	var overlaps []Overlap
	for _, e := range entries {
		for _, candidate := range tree.SearchIntersect(e.rect) {
			other := candidate.(*entry)
			if other.position <= e.position {
				continue
			}

			// touching rectangles may be reported by the tree as well
			if overlapping(e.record, other.record) {
				overlaps = append(overlaps, Overlap{A: e.record, B: other.record})
			}
		}
	}

	sort.SliceStable(overlaps, func(i, j int) bool {
		if overlaps[i].A.ID != overlaps[j].A.ID {
			return overlaps[i].A.ID < overlaps[j].A.ID
		}
		return overlaps[i].B.ID < overlaps[j].B.ID
	})

	return overlaps
}

func overlapping(a, b tile.Record) bool {
	width := math.Min(a.East, b.East) - math.Max(a.West, b.West)
	height := math.Min(a.North, b.North) - math.Max(a.South, b.South)
	return width > 0 && height > 0
}
