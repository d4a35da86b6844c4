// Package render draws the benchmark figures with gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wfccharts/bench"
)

// share of the distance between two ticks covered by one group of bars
const groupFill = 0.8

// Bar is one finite bar of a grouped chart.
type Bar struct {
	Group    int // index of the scenario, its nominal x position
	Slot     int // index of the category inside the group
	Scenario string
	Category string
	Height   float64
}

// Mark stands in for a bar whose run did not finish.
type Mark struct {
	Group    int
	Slot     int
	Scenario string
	Category string
	Text     string
}

// Layout is a grouped bar chart before drawing: scenarios are the groups,
// strategies the bars within each group.
type Layout struct {
	Groups     []string
	Categories []string
	Values     [][]float64 // [group][slot], sentinel included
	Bars       []Bar
	Marks      []Mark
}

// Lay arranges the measurements of the given scenarios in strategy order.
func Lay(m *bench.Measurements, scenarios, strategies []string) (Layout, error) {
	l := Layout{
		Groups:     append([]string(nil), scenarios...),
		Categories: append([]string(nil), strategies...),
		Values:     make([][]float64, len(scenarios)),
	}
	for g, sc := range scenarios {
		l.Values[g] = make([]float64, len(strategies))
		for s, st := range strategies {
			v, ok := m.Value(sc, st)
			if !ok {
				return Layout{}, fmt.Errorf("%s: %q/%q: %w", m.Name(), sc, st, bench.ErrMissingScenario)
			}
			l.Values[g][s] = v
			if bench.IsDNF(v) {
				l.Marks = append(l.Marks, Mark{Group: g, Slot: s, Scenario: sc, Category: st, Text: bench.Annotation})
				continue
			}
			l.Bars = append(l.Bars, Bar{Group: g, Slot: s, Scenario: sc, Category: st, Height: v})
		}
	}
	return l, nil
}

// Rows flattens the layout for the csv sidecar.
func (l Layout) Rows() [][]string {
	rows := [][]string{{"scenario", "strategy", "value"}}
	for g, sc := range l.Groups {
		for s, st := range l.Categories {
			rows = append(rows, []string{sc, st, bench.FormatValue(l.Values[g][s])})
		}
	}
	return rows
}

// BarWidth divides the group share of the tick spacing between the bars
// of one group.
func BarWidth(spacing vg.Length, categories int) vg.Length {
	if categories == 0 || spacing <= 0 {
		return 0
	}
	return spacing * groupFill / vg.Length(categories)
}

// Offset moves bar slot of a group so the group is centered on its tick.
func Offset(slot, categories int, barWidth vg.Length) vg.Length {
	return (vg.Length(slot) - vg.Length(categories-1)/2) * barWidth
}

// Options are the labels and size of one chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// GroupedBars builds the chart of a layout. Runs that did not finish get
// no bar; a vertical "too long" label is drawn from the axis instead.
func GroupedBars(l Layout, opts Options) (*plot.Plot, error) {
	if len(l.Groups) == 0 || len(l.Categories) == 0 {
		return nil, fmt.Errorf("%q: empty layout", opts.Title)
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true

	if len(l.Bars) > 0 {
		p.Add(&barSet{bars: l.Bars, categories: len(l.Categories), color: plotutil.Color})
	}
	for s, name := range l.Categories {
		p.Legend.Add(name, swatch{plotutil.Color(s)})
	}
	if len(l.Marks) > 0 {
		marks := &dnfMarks{marks: l.Marks, categories: len(l.Categories), TextStyle: p.Y.Tick.Label}
		marks.Rotation = math.Pi / 2
		marks.XAlign = draw.XLeft
		marks.YAlign = draw.YCenter
		p.Add(marks)
	}

	p.NominalX(l.Groups...)
	p.X.Min = -0.5
	p.X.Max = float64(len(l.Groups)) - 0.5
	p.Y.Min = 0
	if p.Y.Max <= 0 || math.IsInf(p.Y.Max, 0) {
		p.Y.Max = 1
	}
	// headroom for the legend
	p.Y.Max *= 1.25
	return p, nil
}

// SaveGroupedBars lays out, builds and saves one grouped chart. The format
// follows the extension of path.
func SaveGroupedBars(path string, m *bench.Measurements, scenarios []string, opts Options) (Layout, error) {
	l, err := Lay(m, scenarios, m.Strategies())
	if err != nil {
		return Layout{}, err
	}
	p, err := GroupedBars(l, opts)
	if err != nil {
		return Layout{}, err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return Layout{}, fmt.Errorf("save %s: %w", path, err)
	}
	return l, nil
}

// swatch is a solid legend thumbnail.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonY(pts))
}

// barSet draws finite bars grouped around their nominal tick. The width
// is taken from the tick spacing of the data area at draw time.
type barSet struct {
	bars       []Bar
	categories int
	color      func(slot int) color.Color
}

// rects are the bars on the data canvas c, in the order of b.bars.
func (b *barSet) rects(c *draw.Canvas, plt *plot.Plot) []vg.Rectangle {
	trX, trY := plt.Transforms(c)
	w := BarWidth(trX(1)-trX(0), b.categories)
	out := make([]vg.Rectangle, len(b.bars))
	for i, bar := range b.bars {
		x := trX(float64(bar.Group)) + Offset(bar.Slot, b.categories, w)
		out[i] = vg.Rectangle{
			Min: vg.Point{X: x - w/2, Y: trY(0)},
			Max: vg.Point{X: x + w/2, Y: trY(bar.Height)},
		}
	}
	return out
}

func (b *barSet) Plot(c draw.Canvas, plt *plot.Plot) {
	for i, r := range b.rects(&c, plt) {
		pts := []vg.Point{
			r.Min,
			{X: r.Min.X, Y: r.Max.Y},
			r.Max,
			{X: r.Max.X, Y: r.Min.Y},
		}
		c.FillPolygon(b.color(b.bars[i].Slot), c.ClipPolygonY(pts))
	}
}

func (b *barSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, bar := range b.bars {
		xmin = math.Min(xmin, float64(bar.Group))
		xmax = math.Max(xmax, float64(bar.Group))
		ymax = math.Max(ymax, bar.Height)
	}
	return xmin, xmax, 0, ymax
}

// dnfMarks writes the annotation of every unfinished run at the foot of
// the bar it replaces.
type dnfMarks struct {
	marks      []Mark
	categories int
	draw.TextStyle
}

func (d *dnfMarks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	w := BarWidth(trX(1)-trX(0), d.categories)
	y := trY(0) + vg.Points(3)
	for _, m := range d.marks {
		x := trX(float64(m.Group)) + Offset(m.Slot, d.categories, w)
		c.FillText(d.TextStyle, vg.Point{X: x, Y: y}, m.Text)
	}
}

func (d *dnfMarks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, m := range d.marks {
		xmin = math.Min(xmin, float64(m.Group))
		xmax = math.Max(xmax, float64(m.Group))
	}
	return xmin, xmax, 0, 0
}
