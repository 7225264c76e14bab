// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/lvstream/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	traceSpans bool

	cfg    config.Config
	logger *slog.Logger
	tp     trace.TracerProvider
	tpStop func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvstream",
		Short:         "Streamline seeding and curvature-based post-processing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.tpStop != nil {
				return a.tpStop(cmd.Context())
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML run configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log format (text, json)")
	root.PersistentFlags().BoolVar(&a.traceSpans, "trace", false, "print pipeline spans to stderr")

	root.AddCommand(newSeedCmd(a), newFilterCmd(a), newCFLCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())

	a.tp = noop.NewTracerProvider()
	if a.traceSpans {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		sdk := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		a.tp, a.tpStop = sdk, sdk.Shutdown
	}
	a.logger.Debug("configuration loaded", "path", a.configPath, "log_level", cfg.Log.Level)
	return nil
}
