package bench

import (
	"fmt"
	"strconv"
)

// Difference is one value that two revisions disagree on.
// Old or New is empty when the entry exists in only one revision.
type Difference struct {
	Dataset  string
	Scenario string
	Category string
	Old      string
	New      string
}

func (d Difference) String() string {
	return fmt.Sprintf("%s / %s / %s: %s -> %s", d.Dataset, d.Scenario, d.Category, orMissing(d.Old), orMissing(d.New))
}

func orMissing(s string) string {
	if s == "" {
		return "(missing)"
	}
	return s
}

// Drift lists every value that differs between two revisions. It only
// reports; neither revision is taken as correct.
func Drift(a, b *Set) []Difference {
	var diffs []Difference
	diffs = append(diffs, distributionDrift(a.Decisions, b.Decisions)...)
	diffs = append(diffs, measurementDrift(a.Time, b.Time)...)
	diffs = append(diffs, measurementDrift(a.Backtracks, b.Backtracks)...)
	return diffs
}

func measurementDrift(a, b *Measurements) []Difference {
	var diffs []Difference
	for _, sc := range union(a.scenarios, b.scenarios) {
		for _, st := range union(a.strategies, b.strategies) {
			av, aok := a.Value(sc, st)
			bv, bok := b.Value(sc, st)
			d := Difference{Dataset: a.name, Scenario: sc, Category: st}
			if aok {
				d.Old = FormatValue(av)
			}
			if bok {
				d.New = FormatValue(bv)
			}
			if aok != bok || (aok && av != bv) {
				diffs = append(diffs, d)
			}
		}
	}
	return diffs
}

func distributionDrift(a, b *Distribution) []Difference {
	var diffs []Difference
	for _, sc := range union(a.scenarios, b.scenarios) {
		ac, bc := a.counts[sc], b.counts[sc]
		nodes := union(intStrings(a.Nodes(sc)), intStrings(b.Nodes(sc)))
		for _, ns := range nodes {
			node, _ := strconv.Atoi(ns)
			an, aok := ac[node]
			bn, bok := bc[node]
			if aok == bok && an == bn {
				continue
			}
			d := Difference{Dataset: a.name, Scenario: sc, Category: ns}
			if aok {
				d.Old = strconv.Itoa(an)
			}
			if bok {
				d.New = strconv.Itoa(bn)
			}
			diffs = append(diffs, d)
		}
	}
	return diffs
}

// FormatValue prints a measurement, writing the sentinel as "inf".
func FormatValue(v float64) string {
	if IsDNF(v) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intStrings(v []int) []string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return s
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
