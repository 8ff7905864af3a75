// SPDX-License-Identifier: MIT

// Command parmat partitions dense matrices across workers.
//
//	parmat plan   -i m.yaml -w 4        print the partition plan for a matrix file
//	parmat fill   -r 3 -c 3 -w 4        run workers that stamp their index into a zero matrix
//	parmat verify -i plan.yaml          check that a plan file covers its matrix exactly once
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parmat:", err)
		os.Exit(1)
	}
}
