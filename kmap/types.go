package kmap

import (
	"github.com/katalvlaran/kmap/gray"
	"github.com/katalvlaran/kmap/truthtable"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// Grid is the Gray-labelled 2D view of a truth table. It is read-only once built.
type Grid struct {
	Rows  []gray.Label
	Cols  []gray.Label
	Cells [][]truthtable.Classification
}

// NumRows returns the number of rows.
func (g Grid) NumRows() int { return len(g.Rows) }

// NumCols returns the number of columns.
func (g Grid) NumCols() int { return len(g.Cols) }

// At returns the classification stored at c.
func (g Grid) At(c Cell) truthtable.Classification { return g.Cells[c.Row][c.Col] }

// Index returns the truth-table index of c: row label bits followed by
// column label bits, read as a base-2 integer.
func (g Grid) Index(c Cell) int {
	return g.Rows[c.Row].Concat(g.Cols[c.Col]).Value()
}

// Group is a set of mutually connected non-false cells holding at least one
// true cell, listed in discovery order.
type Group struct {
	Cells []Cell
}

// Len returns the number of cells in the group.
func (gr Group) Len() int { return len(gr.Cells) }

// Contains reports whether c belongs to the group.
func (gr Group) Contains(c Cell) bool {
	for _, x := range gr.Cells {
		if x == c {
			return true
		}
	}

	return false
}

// Rect is an inclusive rectangle of grid coordinates.
type Rect struct {
	Top, Left, Bottom, Right int
}

// Bounds returns the smallest planar rectangle covering every cell of the
// group. A group that wraps around an edge spans the full axis.
func (gr Group) Bounds() Rect {
	if len(gr.Cells) == 0 {
		return Rect{}
	}
	r := Rect{Top: gr.Cells[0].Row, Left: gr.Cells[0].Col, Bottom: gr.Cells[0].Row, Right: gr.Cells[0].Col}
	for _, c := range gr.Cells[1:] {
		r.Top = min(r.Top, c.Row)
		r.Bottom = max(r.Bottom, c.Row)
		r.Left = min(r.Left, c.Col)
		r.Right = max(r.Right, c.Col)
	}

	return r
}

// Map is one rendered K-map: its grid and the groups overlaid on it.
type Map struct {
	Vars   int
	Grid   Grid
	Groups []Group
}

// Indices returns the truth-table indices covered by the group, in cell order.
func (m *Map) Indices(gr Group) []int {
	out := make([]int, len(gr.Cells))
	for i, c := range gr.Cells {
		out[i] = m.Grid.Index(c)
	}

	return out
}
