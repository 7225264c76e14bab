// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstream/linefilter"
	"github.com/katalvlaran/lvstream/pipeline"
	"github.com/katalvlaran/lvstream/vtkio"
)

// --- filter ------------------------------------------------------------------

func newFilterCmd(a *app) *cobra.Command {
	var (
		output      string
		feature     string
		threshold   float64
		workers     int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "filter [streamlines.vtk]",
		Short: "Keep streamlines whose curvature exceeds a threshold",
		Long: `Read advected streamlines from a POLYDATA file, drop every line whose
curvature feature does not exceed the threshold, and write the compacted
lines with their point data.

The input defaults to "data" from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if len(args) == 1 {
				cfg.Data = args[0]
			}
			if output != "" {
				cfg.Output = output
			}
			if feature != "" {
				f, err := linefilter.ParseFeature(feature)
				if err != nil {
					return err
				}
				cfg.Filter.Feature = f
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Filter.Threshold = threshold
			}
			if cmd.Flags().Changed("workers") {
				cfg.Filter.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Data == "" {
				return errNoInput
			}

			f, err := vtkio.ReadFile(cfg.Data)
			if err != nil {
				return err
			}
			if f.PolyData == nil {
				return fmt.Errorf("%s: %w: want POLYDATA streamlines", cfg.Data, vtkio.ErrFormat)
			}

			reg := prometheus.NewRegistry()
			p := pipeline.New(
				pipeline.WithLogger(a.logger),
				pipeline.WithRegisterer(reg),
				pipeline.WithTracerProvider(a.tp),
				pipeline.WithFeature(cfg.Filter.Feature),
				pipeline.WithThreshold(cfg.Filter.Threshold),
				pipeline.WithWorkers(cfg.Filter.Workers),
				pipeline.WithPercentiles(cfg.Filter.Percentiles...),
			)
			out, rep, err := p.Run(cmd.Context(), f.PolyData)
			if err != nil {
				return err
			}
			if err := writePolyData(cmd.OutOrStdout(), cfg.Output, out); err != nil {
				return err
			}
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			if displayPath(cfg.Output) != "stdout" {
				fmt.Fprintf(cmd.OutOrStdout(), "kept %d/%d lines, %d/%d points (run %s)\n",
					rep.LinesKept, rep.LinesIn, rep.PointsOut, rep.PointsIn, rep.RunID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output VTK path ("-" for stdout)`)
	cmd.Flags().StringVar(&feature, "feature", "", "curvature feature: max or sum")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "keep lines whose feature is strictly greater")
	cmd.Flags().IntVar(&workers, "workers", 0, "filter goroutines (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus text metrics here after the run")
	return cmd
}
