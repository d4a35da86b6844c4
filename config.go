package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"wfccharts/common"
	"wfccharts/report"
)

// Config is the optional YAML file behind --config. Flags given on the
// command line win over it.
type Config struct {
	Out      string   `yaml:"out"`
	Data     string   `yaml:"data"`
	Format   string   `yaml:"format"`
	Width    float64  `yaml:"width"`  // inches
	Height   float64  `yaml:"height"` // inches
	CSV      *bool    `yaml:"csv"`
	Markdown *bool    `yaml:"markdown"`
	Manifest *bool    `yaml:"manifest"`
	Only     []string `yaml:"only"`
}

func defaultConfig() Config {
	opts := report.DefaultOptions()
	return Config{
		Out:    common.DefaultFigDir,
		Format: opts.Format,
		Width:  float64(opts.Width / vg.Inch),
		Height: float64(opts.Height / vg.Inch),
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the file values of every flag left at its default.
func (c *Config) merge(cmd *cobra.Command, file Config) {
	f := cmd.Flags()
	if !f.Changed("out") && file.Out != "" {
		c.Out = file.Out
	}
	if !f.Changed("data") && file.Data != "" {
		c.Data = file.Data
	}
	if !f.Changed("format") && file.Format != "" {
		c.Format = file.Format
	}
	if !f.Changed("width") && file.Width > 0 {
		c.Width = file.Width
	}
	if !f.Changed("height") && file.Height > 0 {
		c.Height = file.Height
	}
	if !f.Changed("csv") && file.CSV != nil {
		c.CSV = file.CSV
	}
	if !f.Changed("markdown") && file.Markdown != nil {
		c.Markdown = file.Markdown
	}
	if !f.Changed("manifest") && file.Manifest != nil {
		c.Manifest = file.Manifest
	}
	if !f.Changed("only") && len(file.Only) > 0 {
		c.Only = file.Only
	}
}

func (c Config) options() (report.Options, error) {
	opts := report.DefaultOptions()
	switch c.Format {
	case "svg", "eps":
		opts.Format = c.Format
	default:
		return opts, fmt.Errorf("format %q: want svg or eps", c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return opts, fmt.Errorf("figure size %gx%g in: must be positive", c.Width, c.Height)
	}
	opts.Width = vg.Length(c.Width) * vg.Inch
	opts.Height = vg.Length(c.Height) * vg.Inch
	if c.CSV != nil {
		opts.CSV = *c.CSV
	}
	if c.Markdown != nil {
		opts.Markdown = *c.Markdown
	}
	if c.Manifest != nil {
		opts.Manifest = *c.Manifest
	}
	return opts, nil
}
