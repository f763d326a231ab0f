package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmap/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.TorusOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[0][0] = 7
	assert.Equal(t, 1, gg.CellValues[0][0])
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

func TestNeighbors_Planar(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(make4x4(), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	// corner (0,0): only down and right survive
	assert.Equal(t, []int{gg.Index(0, 1), gg.Index(1, 0)}, gg.Neighbors(0, 0))
	// interior (1,1): up, down, left, right
	assert.Equal(t, []int{gg.Index(1, 0), gg.Index(1, 2), gg.Index(0, 1), gg.Index(2, 1)}, gg.Neighbors(1, 1))
}

func TestNeighbors_Torus(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(make4x4(), gridgraph.TorusOptions())
	require.NoError(t, err)

	// corner (0,0) wraps to the opposite row and column
	want := []int{gg.Index(0, 3), gg.Index(0, 1), gg.Index(3, 0), gg.Index(1, 0)}
	assert.Equal(t, want, gg.Neighbors(0, 0))
}

// TestNeighbors_TorusNarrow checks that wrap on axes of width 1 and 2 does
// not report the same neighbour twice or the cell itself.
func TestNeighbors_TorusNarrow(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, gridgraph.TorusOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{gg.Index(0, 1), gg.Index(1, 0)}, gg.Neighbors(0, 0))

	one, err := gridgraph.NewGridGraph([][]int{{2}}, gridgraph.TorusOptions())
	require.NoError(t, err)
	assert.Empty(t, one.Neighbors(0, 0))
}

func TestNeighbors_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(make4x4(), opts)
	require.NoError(t, err)
	assert.Len(t, gg.Neighbors(1, 1), 8)
	assert.Len(t, gg.Neighbors(0, 0), 3)
}

func make4x4() [][]int {
	g := make([][]int, 4)
	for y := range g {
		g[y] = make([]int, 4)
	}

	return g
}
