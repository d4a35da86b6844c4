package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFigDir is where the figures are written unless told otherwise.
const DefaultFigDir = "figs"

// Figpath joins the figure directory and a file name, adding ext when the
// name has no extension.
func Figpath(figdir, name, ext string) string {
	if filepath.Ext(name) == "" && ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return filepath.Join(figdir, name)
}

// Sidecar replaces the extension of an image path ("figs/a.svg" -> "figs/a.csv").
func Sidecar(path, ext string) string {
	base := path[:len(path)-len(filepath.Ext(path))]
	return base + "." + strings.TrimPrefix(ext, ".")
}

// Makefigdir creates the figure directory if missing.
func Makefigdir(figdir string) error {
	if err := os.MkdirAll(figdir, 0775); err != nil {
		return fmt.Errorf("create %s: %w", figdir, err)
	}
	return nil
}

// ListFigs returns the images (not sidecars) found in figdir.
func ListFigs(figdir string) ([]string, error) {
	var figs []string
	for _, ext := range ImageExts {
		m, err := filepath.Glob(filepath.Join(figdir, "*"+ext))
		if err != nil {
			return nil, err
		}
		figs = append(figs, m...)
	}
	return figs, nil
}

// ImageExts are the extensions of files counted as figures.
var ImageExts = []string{".svg", ".eps", ".pdf", ".png"}
