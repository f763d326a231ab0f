package kmap

import (
	"fmt"

	"github.com/katalvlaran/kmap/gray"
	"github.com/katalvlaran/kmap/truthtable"
)

// Axes returns the Gray-coded row and column labels for an n-variable map.
// Rows take n/2 bits and columns the remaining n - n/2, so an odd n gives
// a map twice as wide as it is tall.
func Axes(n int) (rows, cols []gray.Label, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("kmap: axes for %d variables: %w", n, gray.ErrNegativeWidth)
	}
	rowBits := n / 2
	if rows, err = gray.Code(rowBits); err != nil {
		return nil, nil, fmt.Errorf("kmap: row labels: %w", err)
	}
	if cols, err = gray.Code(n - rowBits); err != nil {
		return nil, nil, fmt.Errorf("kmap: column labels: %w", err)
	}

	return rows, cols, nil
}

// AssembleGrid lays the table out on a len(rows)×len(cols) grid. The cell at
// (i, j) takes the classification of index rows[i]+cols[j]; an index the
// table does not cover reads as False.
func AssembleGrid(rows, cols []gray.Label, table truthtable.Table) Grid {
	cells := make([][]truthtable.Classification, len(rows))
	for i, r := range rows {
		cells[i] = make([]truthtable.Classification, len(cols))
		for j, c := range cols {
			cells[i][j] = table.At(r.Concat(c).Value())
		}
	}

	return Grid{Rows: rows, Cols: cols, Cells: cells}
}
