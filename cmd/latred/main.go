// SPDX-License-Identifier: MIT

// Command latred reduces a square lattice basis given as vector literals
// and writes the norm of the shortest basis vector found.
//
//	latred [1 0] [1 2]          # writes 1.000000000000000 to result.txt
//	latred -o - -f yaml [2 0] [1 1]
//	latred check [1 0] [1 2]
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lattice/internal/fault"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(fault.ExitCode(err))
	}
}
