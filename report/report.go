// Package report is the fixed sequence of figures produced from one
// revision of the benchmark tables.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"wfccharts/bench"
	"wfccharts/common"
	"wfccharts/render"
	"wfccharts/savedata"
)

var ErrUnknownRoutine = errors.New("unknown routine")

// ManifestFile lists what the last run wrote, inside the output directory
// when Options.Manifest is set.
const ManifestFile = "manifest.json"

// Options apply to every routine of a run. By default a run writes the
// images and nothing else; the data files are opt-in.
type Options struct {
	Format   string // vector format of the charts, "svg" or "eps"
	Width    vg.Length
	Height   vg.Length
	CSV      bool
	Markdown bool
	Manifest bool
}

func DefaultOptions() Options {
	return Options{Format: "svg", Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

// Sidecars is the data behind a figure, saved next to it on request.
type Sidecars struct {
	Rows  [][]string
	Table *savedata.Table
}

// Routine produces exactly one image.
type Routine struct {
	Name    string
	File    string
	Enabled bool
	Draw    func(path string) (Sidecars, error)
}

// Default returns every routine in run order. Disabled ones only run when
// asked for by name.
func Default(set *bench.Set, opts Options) []Routine {
	ext := "." + opts.Format
	routines := []Routine{
		{
			Name:    "decision_nodes_table",
			File:    "decision_nodes_table" + ext,
			Enabled: true,
			Draw: func(path string) (Sidecars, error) {
				t := DistributionTable(set.Decisions)
				if err := render.Table(path, t); err != nil {
					return Sidecars{}, err
				}
				return Sidecars{Rows: render.DistributionRows(set.Decisions), Table: &t}, nil
			},
		},
		{
			Name: "decision_nodes_panel",
			File: "decision_nodes_panel" + ext,
			Draw: func(path string) (Sidecars, error) {
				return distributionPanel(path, set.Decisions, opts)
			},
		},
	}
	for _, size := range set.Time.Sizes() {
		size := size
		routines = append(routines, Routine{
			Name:    "time_" + size,
			File:    "time_" + size + ext,
			Enabled: true,
			Draw: func(path string) (Sidecars, error) {
				return sizeChart(path, set.Time, size, opts)
			},
		})
	}
	routines = append(routines, Routine{
		Name:    "backtracks_panel",
		File:    "backtracks_panel" + ext,
		Enabled: true,
		Draw: func(path string) (Sidecars, error) {
			return measurementPanel(path, set.Backtracks, opts)
		},
	})
	for _, m := range []*bench.Measurements{set.Time, set.Backtracks} {
		for _, sc := range m.Scenarios() {
			m, sc := m, sc
			name := "preview_" + m.Name() + "_" + bench.Slug(sc)
			routines = append(routines, Routine{
				Name: name,
				File: name + ".png",
				Draw: func(path string) (Sidecars, error) {
					if err := render.Preview(path, m, sc); err != nil {
						return Sidecars{}, err
					}
					l, err := render.Lay(m, []string{sc}, m.Strategies())
					return Sidecars{Rows: l.Rows()}, err
				},
			})
		}
	}
	return routines
}

// Select picks the enabled routines, or exactly the named ones when only
// is not empty. Run order is kept either way.
func Select(routines []Routine, only []string) ([]Routine, error) {
	if len(only) == 0 {
		var sel []Routine
		for _, r := range routines {
			if r.Enabled {
				sel = append(sel, r)
			}
		}
		return sel, nil
	}
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	var sel []Routine
	for _, r := range routines {
		if want[r.Name] {
			sel = append(sel, r)
			delete(want, r.Name)
		}
	}
	if len(want) > 0 {
		missing := maps.Keys(want)
		slices.Sort(missing)
		return nil, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrUnknownRoutine)
	}
	return sel, nil
}

// Figure is one manifest entry.
type Figure struct {
	Routine  string `json:"routine"`
	Image    string `json:"image"`
	CSV      string `json:"csv,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

type Manifest struct {
	Figures []Figure `json:"figures"`
}

// Images lists the written image paths in run order.
func (m Manifest) Images() []string {
	out := make([]string, len(m.Figures))
	for i, f := range m.Figures {
		out[i] = f.Image
	}
	return out
}

// Run draws the routines one after the other into figdir. Each routine's
// files are complete before the next routine starts; the first error stops
// the run.
func Run(figdir string, routines []Routine, opts Options) (Manifest, error) {
	var man Manifest
	if err := common.Makefigdir(figdir); err != nil {
		return man, err
	}
	for _, r := range routines {
		path := common.Figpath(figdir, r.File, opts.Format)
		sc, err := r.Draw(path)
		if err != nil {
			return man, fmt.Errorf("%s: %w", r.Name, err)
		}
		fig := Figure{Routine: r.Name, Image: path}
		if opts.CSV && sc.Rows != nil {
			fig.CSV = common.Sidecar(path, "csv")
			if err := savedata.WriteCSV(fig.CSV, sc.Rows); err != nil {
				return man, fmt.Errorf("%s: %w", r.Name, err)
			}
		}
		if opts.Markdown && sc.Table != nil {
			fig.Markdown = common.Sidecar(path, "md")
			if err := sc.Table.SaveMarkdown(fig.Markdown); err != nil {
				return man, fmt.Errorf("%s: %w", r.Name, err)
			}
		}
		log.Info().Str("routine", r.Name).Str("file", path).Msg("saved figure")
		man.Figures = append(man.Figures, fig)
	}
	if !opts.Manifest {
		return man, nil
	}
	if err := savedata.SaveJSON(filepath.Join(figdir, ManifestFile), man); err != nil {
		return man, err
	}
	return man, nil
}

func sizeChart(path string, m *bench.Measurements, size string, opts Options) (Sidecars, error) {
	sc, err := m.BySize(size)
	if err != nil {
		return Sidecars{}, err
	}
	l, err := render.SaveGroupedBars(path, m, sc, render.Options{
		Title:  fmt.Sprintf("%s (%s)", m.Title(), size),
		XLabel: "Scenario",
		YLabel: m.YLabel(),
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		return Sidecars{}, err
	}
	t := SummaryTable(m, sc, fmt.Sprintf("%s (%s)", m.Title(), size))
	return Sidecars{Rows: l.Rows(), Table: &t}, nil
}

// measurementPanel stacks one grouped chart per grid size.
func measurementPanel(path string, m *bench.Measurements, opts Options) (Sidecars, error) {
	var plots [][]*plot.Plot
	rows := [][]string{{"scenario", "strategy", "value"}}
	for _, size := range m.Sizes() {
		sc, err := m.BySize(size)
		if err != nil {
			return Sidecars{}, err
		}
		l, err := render.Lay(m, sc, m.Strategies())
		if err != nil {
			return Sidecars{}, err
		}
		p, err := render.GroupedBars(l, render.Options{
			Title:  fmt.Sprintf("%s (%s)", m.Title(), size),
			YLabel: m.YLabel(),
			Width:  opts.Width,
			Height: opts.Height,
		})
		if err != nil {
			return Sidecars{}, err
		}
		plots = append(plots, []*plot.Plot{p})
		rows = append(rows, l.Rows()[1:]...)
	}
	h := opts.Height * vg.Length(len(plots))
	if err := render.Panel(path, plots, opts.Width, h); err != nil {
		return Sidecars{}, err
	}
	t := SummaryTable(m, m.Scenarios(), m.Title())
	return Sidecars{Rows: rows, Table: &t}, nil
}

func distributionPanel(path string, d *bench.Distribution, opts Options) (Sidecars, error) {
	var plots [][]*plot.Plot
	for i, sc := range d.Scenarios() {
		p, err := render.DistributionBars(d, sc, i)
		if err != nil {
			return Sidecars{}, err
		}
		plots = append(plots, []*plot.Plot{p})
	}
	h := opts.Height * vg.Length(len(plots)) / 2
	if err := render.Panel(path, plots, opts.Width, h); err != nil {
		return Sidecars{}, err
	}
	return Sidecars{Rows: render.DistributionRows(d)}, nil
}
