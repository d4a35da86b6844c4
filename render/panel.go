package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgsvg"
)

var ErrFormat = errors.New("unsupported vector format")

// newCanvas returns a vector canvas for the extension of path.
func newCanvas(path string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return vgsvg.New(w, h), nil
	case ".eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrFormat)
}

func writeCanvas(path string, img vg.CanvasWriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Panel draws rows of plots on one canvas with aligned axes.
func Panel(path string, plots [][]*plot.Plot, w, h vg.Length) error {
	if len(plots) == 0 || len(plots[0]) == 0 {
		return fmt.Errorf("%s: empty panel", path)
	}
	cols := len(plots[0])
	for _, row := range plots {
		if len(row) != cols {
			return fmt.Errorf("%s: ragged panel", path)
		}
	}
	img, err := newCanvas(path, w, h)
	if err != nil {
		return err
	}
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      len(plots),
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(plots, t, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
	return writeCanvas(path, img)
}
