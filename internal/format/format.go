// Package format renders tabular CLI output as ASCII or Markdown.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls how a Table renders.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Align specifies horizontal alignment for one column.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
)

// Column controls per-column formatting.
type Column struct {
	Number   int // 1-based column index
	Align    Align
	MaxWidth int // wrap content beyond this width; 0 = unlimited
}

// Table wraps go-pretty's writer. Build the table once and render it
// via String in the mode set at creation.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns a Table rendering in the given mode.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	switch m {
	case ASCII:
		w.SetStyle(table.StyleLight)
	case Markdown:
		// Keep header text as given; Markdown consumers style it.
		style := table.StyleDefault
		style.Format.Header = text.FormatDefault
		style.Format.Footer = text.FormatDefault
		w.SetStyle(style)
	}
	return &Table{w: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

// Row appends a data row. Values are stringified via fmt.Sprint.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.w.AppendRow(row)
}

// Footer appends a footer row, typically totals.
func (t *Table) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.w.AppendFooter(row)
}

// Columns applies per-column alignment and width limits.
func (t *Table) Columns(cols ...Column) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfg := table.ColumnConfig{Number: c.Number, WidthMax: c.MaxWidth}
		switch c.Align {
		case AlignLeft:
			cfg.Align = text.AlignLeft
		case AlignRight:
			cfg.Align = text.AlignRight
		}
		cfgs[i] = cfg
	}
	t.w.SetColumnConfigs(cfgs)
}

// String renders the table in the configured mode.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}
