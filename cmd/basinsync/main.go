// Package main provides the CLI entry point for basinsync.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ncfmp/basinsync-go/internal/config"
	"github.com/ncfmp/basinsync-go/internal/logging"
	"github.com/ncfmp/basinsync-go/pkg/basinsync"
)

var version = "dev"

type app struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "basinsync",
		Short: "Update NCFMP study tables from the tracking workbook",
		Long: `basinsync writes Milestone, Task_Num and a dated Status_YYYYMMDD field into the
BasinStudies and RAS2D tables of a GeoPackage / SQLite dataset, using the values
found in the project tracking workbook.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (YAML, or TOML with a .toml extension)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: console or json (default from config)")

	rootCmd.AddCommand(a.basinsCmd(), a.hucsCmd(), versionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.WithRun(logger).With(zap.String("command", cmd.Name()))
	return nil
}

func (a *app) basinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basins <dataset> <workbook.xlsx> <date>",
		Short: "Update the BasinStudies table from the ESP_2D_Actual sheet",
		Long: `Counts the filled tracking cells of each basin on the ESP_2D_Actual sheet and
writes the matching Milestone and Task_Num codes to every BasinStudies record.
The date (MM/DD/YYYY, optionally followed by a time) names the status field.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.BasinOptions()
			opts.Out = cmd.OutOrStdout()
			opts.Logger = a.logger

			res, err := basinsync.RunBasins(cmd.Context(), args[0], args[1], args[2], opts)
			if err != nil {
				return err
			}
			a.report(res)
			return nil
		},
	}
}

func (a *app) hucsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hucs <dataset> <workbook.xlsx> <date>",
		Short: "Update the RAS2D table from the Dashboard Tracking sheet",
		Long: `Reads the HUC10 code and overall status of each Dashboard Tracking row and
writes the matching Milestone, Task_Num and status to the RAS2D record with that code.
The date (MM/DD/YYYY, optionally followed by a time) names the status field.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.HUCOptions()
			opts.Out = cmd.OutOrStdout()
			opts.Logger = a.logger

			res, err := basinsync.RunHUCs(cmd.Context(), args[0], args[1], args[2], opts)
			if err != nil {
				return err
			}
			a.report(res)
			return nil
		},
	}
}

func (a *app) report(res *basinsync.Result) {
	a.logger.Info("Done",
		zap.String("field", res.Field),
		zap.Bool("field_added", res.Added),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the basinsync version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "basinsync", version)
		},
	}
}
