package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"

	"wfccharts/bench"
)

// DistributionBars plots the decision node histogram of one scenario, one
// bar per observed node value.
func DistributionBars(d *bench.Distribution, scenario string, idx int) (*plot.Plot, error) {
	counts, ok := d.Counts(scenario)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", d.Name(), scenario, bench.ErrMissingScenario)
	}
	nodes := d.Nodes(scenario)
	bars := make([]Bar, len(nodes))
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = strconv.Itoa(n)
		bars[i] = Bar{Group: i, Scenario: scenario, Category: names[i], Height: float64(counts[n])}
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%s for %s", d.Title(), scenario)
	p.X.Label.Text = "Decision Node"
	p.Y.Label.Text = "Count"

	p.Add(&barSet{bars: bars, categories: 1, color: func(int) color.Color { return plotutil.Color(idx) }})
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(nodes)) - 0.5
	p.Y.Min = 0
	return p, nil
}

// DistributionRows flattens the histograms for the csv sidecar.
func DistributionRows(d *bench.Distribution) [][]string {
	rows := [][]string{{"scenario", "decision_node", "count"}}
	for _, sc := range d.Scenarios() {
		counts, _ := d.Counts(sc)
		for _, n := range d.Nodes(sc) {
			rows = append(rows, []string{sc, strconv.Itoa(n), strconv.Itoa(counts[n])})
		}
	}
	return rows
}
