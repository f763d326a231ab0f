package kmap_test

import (
	"fmt"

	"github.com/katalvlaran/kmap/kmap"
)

// ExampleBuild groups the two corner cells of the first column, which are
// adjacent because rows "00" and "10" differ in one bit.
func ExampleBuild() {
	m, err := kmap.Build(4, []int{0, 8}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("rows:", m.Grid.Rows, "cols:", m.Grid.Cols)
	for i, gr := range m.Groups {
		fmt.Printf("group %d: cells %v indices %v\n", i, gr.Cells, m.Indices(gr))
	}
	// Output:
	// rows: [00 01 11 10] cols: [00 01 11 10]
	// group 0: cells [{0 0} {3 0}] indices [0 8]
}
