package savedata

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table is a header plus rows of already formatted cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	Footer []string
}

func (t Table) writer() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Format.Header = text.FormatDefault
	w.Style().Format.Footer = text.FormatDefault
	if t.Title != "" {
		w.SetTitle(t.Title)
	}
	w.AppendHeader(toRow(t.Header))
	for _, r := range t.Rows {
		w.AppendRow(toRow(r))
	}
	if len(t.Footer) > 0 {
		w.AppendFooter(toRow(t.Footer))
	}
	cfgs := make([]table.ColumnConfig, 0, len(t.Header))
	for i := 1; i < len(t.Header); i++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
	}
	w.SetColumnConfigs(cfgs)
	return w
}

// ASCII renders box drawn text for terminals.
func (t Table) ASCII() string {
	return t.writer().Render()
}

// Markdown renders a GitHub flavoured Markdown table.
func (t Table) Markdown() string {
	return t.writer().RenderMarkdown()
}

// SaveMarkdown writes the Markdown rendition to path.
func (t Table) SaveMarkdown(path string) error {
	return os.WriteFile(path, []byte(t.Markdown()+"\n"), 0664)
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
