// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/kmap/gridgraph"
)

// ExampleGridGraph_ConnectedComponents groups cells of a 4×4 torus.
// Scenario:
//
//   - 0 = water, 1 = weak land, 2 = anchoring land
//   - Conn4 with wrap-around: the corners are mutual neighbours
//   - Expect one island reaching all four corners plus (0,2)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 0, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.TorusOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 1
	// component 0: (0,0) (0,3) (0,2) (3,3) (3,0)
}
