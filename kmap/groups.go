package kmap

import (
	"github.com/katalvlaran/kmap/gridgraph"
	"github.com/katalvlaran/kmap/truthtable"
)

// FindGroups returns the connected components of non-false cells under
// toroidal 4-adjacency, keeping only components with a true cell.
// Components are ordered by their first cell in row-major order and list
// their cells in depth-first discovery order.
//
// Every non-false cell is visited exactly once; the returned groups are
// disjoint. A grid with no rows or columns has no groups.
//
// Complexity: O(R·C).
func FindGroups(g Grid) []Group {
	values := make([][]int, len(g.Cells))
	for i, row := range g.Cells {
		values[i] = make([]int, len(row))
		for j, c := range row {
			values[i][j] = int(c)
		}
	}

	opts := gridgraph.TorusOptions()
	opts.LandThreshold = int(truthtable.DontCare)
	opts.AnchorThreshold = int(truthtable.True)
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil
	}

	comps := gg.ConnectedComponents()
	groups := make([]Group, 0, len(comps))
	for _, comp := range comps {
		cells := make([]Cell, len(comp))
		for k, idx := range comp {
			x, y := gg.Coordinate(idx)
			cells[k] = Cell{Row: y, Col: x}
		}
		groups = append(groups, Group{Cells: cells})
	}

	return groups
}
