package report

import (
	"strconv"

	"wfccharts/bench"
	"wfccharts/common"
	"wfccharts/savedata"
)

// DistributionTable has one row per scenario and one column per decision
// node value seen in any scenario, plus the node total and weighted mean.
func DistributionTable(d *bench.Distribution) savedata.Table {
	nodes := d.AllNodes()
	header := []string{"Scenario"}
	for _, n := range nodes {
		header = append(header, strconv.Itoa(n))
	}
	header = append(header, "Total", "Mean")

	t := savedata.Table{Title: d.Title(), Header: header}
	for _, sc := range d.Scenarios() {
		counts, _ := d.Counts(sc)
		row := []string{sc}
		for _, n := range nodes {
			c, ok := counts[n]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.Itoa(c))
		}
		row = append(row,
			strconv.Itoa(common.Total(counts)),
			strconv.FormatFloat(common.WeightedMean(counts), 'f', 2, 64))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SummaryTable gives, for each strategy, the mean over the finished runs
// of the selected scenarios and how many runs did not finish.
func SummaryTable(m *bench.Measurements, scenarios []string, title string) savedata.Table {
	t := savedata.Table{
		Title:  title,
		Header: []string{"Strategy", "Mean", "Std dev", "Finished", bench.Annotation},
	}
	sums := common.StrategySummaries(m, scenarios)
	for i, st := range m.Strategies() {
		s := sums[i]
		mean, sd := "-", "-"
		if s.Done > 0 {
			mean = strconv.FormatFloat(s.Mean, 'g', 4, 64)
		}
		if s.Done > 1 {
			sd = strconv.FormatFloat(s.StdDev, 'g', 4, 64)
		}
		t.Rows = append(t.Rows, []string{st, mean, sd, strconv.Itoa(s.Done), strconv.Itoa(s.DNF)})
	}
	return t
}
