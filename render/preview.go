package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"wfccharts/bench"
)

var ErrNothingToDraw = errors.New("no finished run to draw")

// PreviewBars are the go-chart bars of one scenario. Unfinished runs are
// zero height bars whose label carries the annotation.
func PreviewBars(m *bench.Measurements, scenario string) ([]chart.Value, error) {
	v, ok := m.Values(scenario)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", m.Name(), scenario, bench.ErrMissingScenario)
	}
	bars := make([]chart.Value, len(v))
	finished := 0
	for i, st := range m.Strategies() {
		if bench.IsDNF(v[i]) {
			bars[i] = chart.Value{Label: fmt.Sprintf("%s (%s)", st, bench.Annotation), Value: 0}
			continue
		}
		bars[i] = chart.Value{Label: st, Value: v[i]}
		finished++
	}
	if finished == 0 {
		return nil, fmt.Errorf("%s: %q: %w", m.Name(), scenario, ErrNothingToDraw)
	}
	return bars, nil
}

// Preview renders a quick single scenario chart, one bar per strategy.
// The raster or vector backend follows the extension (.png or .svg).
func Preview(path string, m *bench.Measurements, scenario string) error {
	bars, err := PreviewBars(m, scenario)
	if err != nil {
		return err
	}
	graph := chart.BarChart{
		Title: fmt.Sprintf("%s for %s", m.Title(), scenario),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:    1024,
		Height:   512,
		BarWidth: 120,
		YAxis:    chart.YAxis{Name: m.YLabel()},
		Bars:     bars,
	}
	if allZero(bars) {
		// go-chart refuses an empty value range
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	}

	provider := chart.PNG
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
	case ".svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("%s: %w", path, ErrFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(provider, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func allZero(bars []chart.Value) bool {
	for _, b := range bars {
		if b.Value != 0 {
			return false
		}
	}
	return true
}
