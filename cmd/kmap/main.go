// Command kmap builds and simplifies a Karnaugh map from the command line.
//
//	kmap -n 4 -m 0,2,5,7,8,10,13,15 -d 1,3
//	kmap -n 3 -m 1,3,5 --form POS --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
