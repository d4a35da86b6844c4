package bench

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	DecisionNodesFile = "decision_nodes.yaml"
	TimeFile          = "time.yaml"
	BacktracksFile    = "backtracks.yaml"
)

// Set is one revision of all three benchmark tables.
type Set struct {
	Decisions  *Distribution
	Time       *Measurements
	Backtracks *Measurements
}

type distributionFile struct {
	Name      string                 `yaml:"name"`
	Title     string                 `yaml:"title"`
	Scenarios []string               `yaml:"scenarios"`
	Counts    map[string]map[int]int `yaml:"counts"`
}

type measurementsFile struct {
	Name       string               `yaml:"name"`
	Title      string               `yaml:"title"`
	YLabel     string               `yaml:"ylabel"`
	Strategies []string             `yaml:"strategies"`
	Scenarios  []string             `yaml:"scenarios"`
	Values     map[string][]float64 `yaml:"values"`
}

// Load returns the revision compiled into the binary.
func Load() (*Set, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir reads a revision from a directory holding the three YAML files.
func LoadDir(dir string) (*Set, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads and validates a revision from fsys.
func LoadFS(fsys fs.FS) (*Set, error) {
	var df distributionFile
	if err := decode(fsys, DecisionNodesFile, &df); err != nil {
		return nil, err
	}
	decisions, err := NewDistribution(df.Name, df.Title, df.Scenarios, df.Counts)
	if err != nil {
		return nil, err
	}
	tm, err := loadMeasurements(fsys, TimeFile)
	if err != nil {
		return nil, err
	}
	bt, err := loadMeasurements(fsys, BacktracksFile)
	if err != nil {
		return nil, err
	}
	return &Set{Decisions: decisions, Time: tm, Backtracks: bt}, nil
}

func loadMeasurements(fsys fs.FS, name string) (*Measurements, error) {
	var mf measurementsFile
	if err := decode(fsys, name, &mf); err != nil {
		return nil, err
	}
	return NewMeasurements(mf.Name, mf.Title, mf.YLabel, mf.Strategies, mf.Scenarios, mf.Values)
}

func decode(fsys fs.FS, name string, v interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
