package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wfccharts/report"
)

func newRunCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string
	var csv, markdown, manifest bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw the enabled figures, or the ones named with --only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			if f.Changed("csv") {
				cfg.CSV = &csv
			}
			if f.Changed("markdown") {
				cfg.Markdown = &markdown
			}
			if f.Changed("manifest") {
				cfg.Manifest = &manifest
			}
			if configPath != "" {
				file, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.merge(cmd, file)
			}
			return runFigures(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with defaults for these flags")
	f.StringVarP(&cfg.Out, "out", "o", cfg.Out, "output directory")
	f.StringVar(&cfg.Data, "data", "", "directory with another revision of the benchmark tables")
	f.StringVar(&cfg.Format, "format", cfg.Format, "chart format (svg or eps)")
	f.Float64Var(&cfg.Width, "width", cfg.Width, "chart width in inches")
	f.Float64Var(&cfg.Height, "height", cfg.Height, "chart height in inches")
	f.StringSliceVar(&cfg.Only, "only", nil, "run only these routines (see list), disabled ones included")
	f.BoolVar(&csv, "csv", false, "also write the plotted data as csv next to each figure")
	f.BoolVar(&markdown, "markdown", false, "also write the tables behind the figures as markdown")
	f.BoolVar(&manifest, "manifest", false, "also write "+report.ManifestFile+" listing what was written")
	return cmd
}

// runFigures draws the selected routines and prints one image path per line.
func runFigures(cmd *cobra.Command, cfg Config) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	set, err := loadSet(cfg.Data)
	if err != nil {
		return err
	}
	routines, err := report.Select(report.Default(set, opts), cfg.Only)
	if err != nil {
		return err
	}
	man, err := report.Run(cfg.Out, routines, opts)
	if err != nil {
		return err
	}
	log.Info().Int("figures", len(man.Figures)).Str("dir", cfg.Out).Msg("done")
	for _, img := range man.Images() {
		fmt.Fprintln(cmd.OutOrStdout(), img)
	}
	return nil
}
