package minimize_test

import (
	"fmt"

	"github.com/katalvlaran/kmap/minimize"
)

func ExampleQuineMcCluskey_Minimize() {
	var qm minimize.QuineMcCluskey
	vars := []string{"A", "B", "C", "D"}
	ms := []int{0, 2, 5, 7, 8, 10, 13, 15}
	ds := []int{1, 3}

	sop, _ := qm.Minimize(vars, minimize.SOP, ms, ds)
	pos, _ := qm.Minimize(vars, minimize.POS, ms, ds)
	fmt.Println(sop)
	fmt.Println(pos)
	// Output:
	// (~B & ~D) | (B & D)
	// (B | ~D) & (~B | D)
}
