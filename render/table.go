package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wfccharts/savedata"
)

const (
	tableFont     = "Helvetica"
	tableBoldFont = "Helvetica-Bold"
	tableFontSize = 10
	cellPad       = 4
	tableMargin   = 10
)

// Table draws t as a figure: title, bold header, ruled rows. The first
// column is left aligned, the others right aligned. The image is sized to
// fit the text.
func Table(path string, t savedata.Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("%s: table without header", path)
	}
	for i, r := range t.Rows {
		if len(r) != len(t.Header) {
			return fmt.Errorf("%s: row %d has %d cells, header has %d", path, i, len(r), len(t.Header))
		}
	}
	regular, err := vg.MakeFont(tableFont, vg.Points(tableFontSize))
	if err != nil {
		return err
	}
	bold, err := vg.MakeFont(tableBoldFont, vg.Points(tableFontSize))
	if err != nil {
		return err
	}
	titleFont, err := vg.MakeFont(tableBoldFont, vg.Points(tableFontSize+2))
	if err != nil {
		return err
	}
	body := draw.TextStyle{Color: color.Black, Font: regular, YAlign: draw.YCenter}
	head := draw.TextStyle{Color: color.Black, Font: bold, YAlign: draw.YCenter}
	title := draw.TextStyle{Color: color.Black, Font: titleFont, XAlign: draw.XCenter, YAlign: draw.YTop}

	pad := vg.Points(cellPad)
	margin := vg.Points(tableMargin)
	colW := make([]vg.Length, len(t.Header))
	for i, h := range t.Header {
		colW[i] = head.Width(h) + 2*pad
	}
	rows := append([][]string{}, t.Rows...)
	hasFooter := len(t.Footer) == len(t.Header)
	if hasFooter {
		rows = append(rows, t.Footer)
	}
	for _, r := range rows {
		for i, cell := range r {
			if w := body.Width(cell) + 2*pad; w > colW[i] {
				colW[i] = w
			}
		}
	}
	var tableW vg.Length
	for _, w := range colW {
		tableW += w
	}
	rowH := head.Height("0") + 2*pad
	var titleH vg.Length
	if t.Title != "" {
		titleH = title.Height(t.Title) + 2*pad
	}
	width := tableW + 2*margin
	if tw := title.Width(t.Title) + 2*margin; tw > width {
		width = tw
	}
	height := titleH + vg.Length(len(rows)+1)*rowH + 2*margin

	img, err := newCanvas(path, width, height)
	if err != nil {
		return err
	}
	dc := draw.New(img)
	left := (width - tableW) / 2
	top := height - margin
	if t.Title != "" {
		dc.FillText(title, vg.Point{X: width / 2, Y: top}, t.Title)
		top -= titleH
	}

	rule := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	thick := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	dc.StrokeLine2(thick, left, top, left+tableW, top)
	drawRow(dc, t.Header, head, colW, left, top-rowH/2, pad)
	top -= rowH
	dc.StrokeLine2(rule, left, top, left+tableW, top)
	for i, r := range rows {
		if hasFooter && i == len(rows)-1 {
			dc.StrokeLine2(rule, left, top, left+tableW, top)
		}
		drawRow(dc, r, body, colW, left, top-rowH/2, pad)
		top -= rowH
	}
	dc.StrokeLine2(thick, left, top, left+tableW, top)
	return writeCanvas(path, img)
}

func drawRow(dc draw.Canvas, cells []string, sty draw.TextStyle, colW []vg.Length, x, y, pad vg.Length) {
	for i, cell := range cells {
		if i == 0 {
			sty.XAlign = draw.XLeft
			dc.FillText(sty, vg.Point{X: x + pad, Y: y}, cell)
		} else {
			sty.XAlign = draw.XRight
			dc.FillText(sty, vg.Point{X: x + colW[i] - pad, Y: y}, cell)
		}
		x += colW[i]
	}
}
