// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
	"github.com/katalvlaran/lvstream/vtkio"
)

// --- cfl ---------------------------------------------------------------------

func newCFLCmd(a *app) *cobra.Command {
	var (
		data    string
		spacing []float64
	)
	cmd := &cobra.Command{
		Use:   "cfl",
		Short: "Print the CFL step length of a structured grid",
		Long: `Print the largest stable integration step for light crossing a uniform
grid. The spacing comes from --spacing dx,dy,dz or from the STRUCTURED_POINTS
file given by --data (default: "data" from the config).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sp geom.Point
			switch {
			case len(spacing) == 3:
				sp = geom.Point{X: spacing[0], Y: spacing[1], Z: spacing[2]}
			case len(spacing) != 0:
				return fmt.Errorf("--spacing wants 3 values, got %d", len(spacing))
			default:
				path := firstNonEmpty(data, a.cfg.Data)
				if path == "" {
					return errNoInput
				}
				f, err := vtkio.ReadFile(path)
				if err != nil {
					return err
				}
				if f.Uniform == nil {
					return fmt.Errorf("%s: %w: want STRUCTURED_POINTS", path, vtkio.ErrFormat)
				}
				sp = f.Uniform.Spacing
			}
			dt, err := dataset.CFLStepLength(sp)
			if err != nil {
				return err
			}
			a.logger.Debug("cfl step", "spacing", sp, "step", dt)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", dt)
			return err
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "STRUCTURED_POINTS file")
	cmd.Flags().Float64SliceVar(&spacing, "spacing", nil, "grid spacing dx,dy,dz")
	return cmd
}
