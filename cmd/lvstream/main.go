// SPDX-License-Identifier: MIT

// Command lvstream seeds particles, filters advected streamlines by
// curvature and reports CFL step lengths.
//
//	lvstream seed   --config run.yaml --data grid.vtk --output seeds.vtk
//	lvstream filter --threshold 0.5 --feature sum lines.vtk -o kept.vtk
//	lvstream cfl    --data grid.vtk
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvstream:", err)
		os.Exit(1)
	}
}
