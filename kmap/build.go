package kmap

import (
	"fmt"

	"github.com/katalvlaran/kmap/truthtable"
)

// Build validates the input and produces the complete map for an
// n-variable function: Gray-coded axes, the classified grid and its groups.
// Errors wrap the truthtable sentinels (ErrInvalidVariableCount,
// ErrInvalidIndex, ErrEmptyMintermSet, ErrOverlap).
func Build(n int, minterms, dontcares []int) (*Map, error) {
	if err := truthtable.Validate(n, minterms, dontcares); err != nil {
		return nil, fmt.Errorf("kmap: %w", err)
	}
	rows, cols, err := Axes(n)
	if err != nil {
		return nil, err
	}
	grid := AssembleGrid(rows, cols, truthtable.Classify(n, minterms, dontcares))

	return &Map{Vars: n, Grid: grid, Groups: FindGroups(grid)}, nil
}
