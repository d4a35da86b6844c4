package common

import (
	"gonum.org/v1/gonum/stat"

	"wfccharts/bench"
)

// WeightedMean of the decision node values weighted by their frequency,
// 0 for a histogram without any observation.
func WeightedMean(hist map[int]int) float64 {
	if Total(hist) == 0 {
		return 0
	}
	x := make([]float64, 0, len(hist))
	w := make([]float64, 0, len(hist))
	for node, n := range hist {
		x = append(x, float64(node))
		w = append(w, float64(n))
	}
	return stat.Mean(x, w)
}

// Total number of decision nodes in a histogram.
func Total(hist map[int]int) int {
	t := 0
	for _, n := range hist {
		t += n
	}
	return t
}

// Summary of one strategy over several scenarios. Runs that did not
// finish are counted, never averaged.
type Summary struct {
	Mean   float64
	StdDev float64
	Done   int
	DNF    int
}

func Summarize(values []float64) Summary {
	var s Summary
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if bench.IsDNF(v) {
			s.DNF++
			continue
		}
		finite = append(finite, v)
	}
	s.Done = len(finite)
	if s.Done > 0 {
		s.Mean = stat.Mean(finite, nil)
	}
	if s.Done > 1 {
		s.StdDev = stat.StdDev(finite, nil)
	}
	return s
}

// StrategySummaries summarizes each strategy column across the given scenarios.
func StrategySummaries(m *bench.Measurements, scenarios []string) []Summary {
	strategies := m.Strategies()
	out := make([]Summary, len(strategies))
	for i := range strategies {
		col := make([]float64, 0, len(scenarios))
		for _, sc := range scenarios {
			v, ok := m.Values(sc)
			if ok {
				col = append(col, v[i])
			}
		}
		out[i] = Summarize(col)
	}
	return out
}
