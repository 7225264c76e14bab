// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/pipeline"
	"github.com/katalvlaran/lvstream/seed"
	"github.com/katalvlaran/lvstream/vtkio"
)

// errNoInput is returned when neither a flag, an argument nor the config
// names an input dataset.
var errNoInput = errors.New("no input dataset")

// --- seed --------------------------------------------------------------------

func newSeedCmd(a *app) *cobra.Command {
	var (
		data     string
		seedData string
		output   string
		strategy string
		count    int
		charged  bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate seed particles from a dataset",
		Long: `Generate seed particles over the bounds of a structured-points or
polydata file and write them as a VTK point cloud.

With --charged (or "charged: true" in the config) every point of the seed
dataset becomes a charged particle carrying mass, charge, weighting and
momentum arrays.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if data != "" {
				cfg.Data = data
			}
			if seedData != "" {
				cfg.SeedData = seedData
			}
			if output != "" {
				cfg.Output = output
			}
			if cmd.Flags().Changed("charged") {
				cfg.Charged = charged
			}
			if strategy != "" {
				s, err := seed.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				cfg.Seeding.Strategy = s
			}
			if cmd.Flags().Changed("count") {
				cfg.Seeding.Count = count
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var (
				pd  *dataset.PolyData
				err error
			)
			if cfg.Charged {
				pd, err = chargedSeeds(cfg.Seeding, firstNonEmpty(cfg.SeedData, cfg.Data))
			} else {
				pd, err = plainSeeds(cfg.Seeding, cfg.Data, cfg.SeedData)
			}
			if err != nil {
				return err
			}
			a.logger.Info("seeds generated",
				"count", len(pd.Points), "charged", cfg.Charged,
				"strategy", cfg.Seeding.Strategy.String(), "output", displayPath(cfg.Output))
			return writePolyData(cmd.OutOrStdout(), cfg.Output, pd)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "dataset providing bounds and resolution")
	cmd.Flags().StringVar(&seedData, "seed-data", "", "point cloud for fromCoordinates or charged seeding")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output VTK path ("-" for stdout)`)
	cmd.Flags().StringVar(&strategy, "strategy", "", "override seeding strategy")
	cmd.Flags().IntVar(&count, "count", 0, "override random/copies count")
	cmd.Flags().BoolVar(&charged, "charged", false, "generate charged particles")
	return cmd
}

func plainSeeds(cfg seed.Config, data, seedData string) (*dataset.PolyData, error) {
	path := data
	if cfg.Strategy == seed.FromCoordinates {
		path = firstNonEmpty(seedData, data)
	}
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	ps, err := seed.Generate(cfg, src)
	if err != nil {
		return nil, err
	}
	return pipeline.SeedsToPolyData(ps), nil
}

func chargedSeeds(cfg seed.Config, path string) (*dataset.PolyData, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	ps, err := seed.GenerateCharged(cfg, src)
	if err != nil {
		return nil, err
	}
	return pipeline.ChargedSeedsToPolyData(ps), nil
}

// readSource loads either dataset kind as a seeding source.
func readSource(path string) (seed.Source, error) {
	if path == "" {
		return nil, errNoInput
	}
	f, err := vtkio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f.Uniform != nil {
		return f.Uniform, nil
	}
	return f.PolyData, nil
}

// writePolyData writes to path, or to stdout when path is empty or "-".
func writePolyData(stdout io.Writer, path string, pd *dataset.PolyData) error {
	if path == "" || path == "-" {
		return vtkio.WritePolyData(stdout, vtkio.DefaultTitle, pd)
	}
	if err := vtkio.WritePolyDataFile(path, vtkio.DefaultTitle, pd); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func displayPath(p string) string {
	if p == "" || p == "-" {
		return "stdout"
	}
	return p
}
