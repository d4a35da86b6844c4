// Package bench holds the hand-maintained backtracking benchmark tables:
// the decision node distribution and the per-strategy run time and
// backtrack measurements. Loaded datasets are read-only; every accessor
// hands out a copy.
package bench

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Annotation is drawn in place of a bar whose run did not finish.
const Annotation = "too long"

var (
	ErrLength          = errors.New("measurement count does not match strategy count")
	ErrMissingScenario = errors.New("scenario has no data")
	ErrExtraScenario   = errors.New("data for undeclared scenario")
	ErrBadValue        = errors.New("invalid measurement")
	ErrNoScenarios     = errors.New("no scenario matches size")
)

// IsDNF reports whether v is the "did not finish" sentinel (+Inf).
func IsDNF(v float64) bool {
	return math.IsInf(v, 1)
}

// Measurements is one value per strategy for every scenario.
type Measurements struct {
	name       string
	title      string
	ylabel     string
	strategies []string
	scenarios  []string
	values     map[string][]float64
}

// NewMeasurements validates and copies the given table.
func NewMeasurements(name, title, ylabel string, strategies, scenarios []string, values map[string][]float64) (*Measurements, error) {
	m := &Measurements{
		name:       name,
		title:      title,
		ylabel:     ylabel,
		strategies: slices.Clone(strategies),
		scenarios:  slices.Clone(scenarios),
		values:     make(map[string][]float64, len(values)),
	}
	for sc, v := range values {
		m.values[sc] = slices.Clone(v)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	return m, nil
}

func (m *Measurements) validate() error {
	for _, sc := range m.scenarios {
		v, ok := m.values[sc]
		if !ok {
			return fmt.Errorf("%q: %w", sc, ErrMissingScenario)
		}
		if len(v) != len(m.strategies) {
			return fmt.Errorf("%q has %d values for %d strategies: %w", sc, len(v), len(m.strategies), ErrLength)
		}
		for i, x := range v {
			if math.IsNaN(x) || math.IsInf(x, -1) || x < 0 {
				return fmt.Errorf("%q/%s = %v: %w", sc, m.strategies[i], x, ErrBadValue)
			}
		}
	}
	for sc := range m.values {
		if !slices.Contains(m.scenarios, sc) {
			return fmt.Errorf("%q: %w", sc, ErrExtraScenario)
		}
	}
	return nil
}

func (m *Measurements) Name() string   { return m.name }
func (m *Measurements) Title() string  { return m.title }
func (m *Measurements) YLabel() string { return m.ylabel }

func (m *Measurements) Strategies() []string { return slices.Clone(m.strategies) }
func (m *Measurements) Scenarios() []string  { return slices.Clone(m.scenarios) }

// Values returns the measurements of one scenario in strategy order.
func (m *Measurements) Values(scenario string) ([]float64, bool) {
	v, ok := m.values[scenario]
	return slices.Clone(v), ok
}

// Value returns a single measurement.
func (m *Measurements) Value(scenario, strategy string) (float64, bool) {
	i := slices.Index(m.strategies, strategy)
	v, ok := m.values[scenario]
	if i < 0 || !ok {
		return 0, false
	}
	return v[i], true
}

// Sizes lists the grid sizes in order of first appearance.
func (m *Measurements) Sizes() []string {
	return Sizes(m.scenarios)
}

// BySize returns the scenarios whose label contains size, in declared order.
func (m *Measurements) BySize(size string) ([]string, error) {
	sel := FilterScenarios(m.scenarios, size)
	if len(sel) == 0 {
		return nil, fmt.Errorf("dataset %s, size %q: %w", m.name, size, ErrNoScenarios)
	}
	return sel, nil
}

// Distribution maps every scenario to a decision node histogram.
type Distribution struct {
	name      string
	title     string
	scenarios []string
	counts    map[string]map[int]int
}

// NewDistribution validates and copies the given histograms.
func NewDistribution(name, title string, scenarios []string, counts map[string]map[int]int) (*Distribution, error) {
	d := &Distribution{
		name:      name,
		title:     title,
		scenarios: slices.Clone(scenarios),
		counts:    make(map[string]map[int]int, len(counts)),
	}
	for sc, c := range counts {
		d.counts[sc] = maps.Clone(c)
	}
	for _, sc := range d.scenarios {
		c, ok := d.counts[sc]
		if !ok || len(c) == 0 {
			return nil, fmt.Errorf("dataset %s: %q: %w", name, sc, ErrMissingScenario)
		}
		for node, n := range c {
			if node <= 0 || n < 0 {
				return nil, fmt.Errorf("dataset %s: %q node %d count %d: %w", name, sc, node, n, ErrBadValue)
			}
		}
	}
	for sc := range d.counts {
		if !slices.Contains(d.scenarios, sc) {
			return nil, fmt.Errorf("dataset %s: %q: %w", name, sc, ErrExtraScenario)
		}
	}
	return d, nil
}

func (d *Distribution) Name() string        { return d.name }
func (d *Distribution) Title() string       { return d.title }
func (d *Distribution) Scenarios() []string { return slices.Clone(d.scenarios) }

// Counts returns the histogram of one scenario.
func (d *Distribution) Counts(scenario string) (map[int]int, bool) {
	c, ok := d.counts[scenario]
	return maps.Clone(c), ok
}

// Nodes returns the decision node values observed in scenario, ascending.
func (d *Distribution) Nodes(scenario string) []int {
	nodes := maps.Keys(d.counts[scenario])
	slices.Sort(nodes)
	return nodes
}

// AllNodes is the ascending union of decision node values over all scenarios.
func (d *Distribution) AllNodes() []int {
	seen := make(map[int]struct{})
	for _, c := range d.counts {
		for node := range c {
			seen[node] = struct{}{}
		}
	}
	nodes := maps.Keys(seen)
	slices.Sort(nodes)
	return nodes
}

// FilterScenarios keeps the labels containing size, preserving order.
func FilterScenarios(scenarios []string, size string) []string {
	var sel []string
	for _, sc := range scenarios {
		if strings.Contains(sc, size) {
			sel = append(sel, sc)
		}
	}
	return sel
}

// SizeOf returns the grid size part of a scenario label ("Castle 32x32" -> "32x32").
func SizeOf(scenario string) string {
	f := strings.Fields(scenario)
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

// Sizes lists distinct grid sizes in order of first appearance.
func Sizes(scenarios []string) []string {
	var sizes []string
	for _, sc := range scenarios {
		s := SizeOf(sc)
		if s != "" && !slices.Contains(sizes, s) {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// Slug turns a label into a file name fragment ("Castle 32x32" -> "castle_32x32").
func Slug(label string) string {
	f := strings.Fields(strings.ToLower(label))
	return strings.Join(f, "_")
}
