package literal_test

import (
	"fmt"

	"github.com/katalvlaran/kmap/literal"
)

func ExampleToLiteralForm() {
	fmt.Println(literal.ToLiteralForm("(~A & B) | (C & ~D)", []string{"A", "B", "C", "D"}))
	// Output:
	// (A'.B) + (C.D')
}
