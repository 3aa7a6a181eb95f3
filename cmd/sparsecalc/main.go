// Command sparsecalc applies add, subtract or multiply to two sparse matrix
// files and writes the serialized result.
//
//	sparsecalc add a.txt b.txt -o result.txt --print
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
