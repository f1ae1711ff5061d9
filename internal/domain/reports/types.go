// Package reports narrows a catalog collection for export and hands it to a renderer.
package reports

import (
	"context"
	"time"
)

// Type selects the narrowing dimension of a report.
type Type string

const (
	TypeComplete     Type = "complete"
	TypeByStatus     Type = "by_status"
	TypeByStockLevel Type = "by_stock_level"
	TypeByCondition  Type = "by_condition"
)

// Configuration is what the user picked in the report dialog.
type Configuration struct {
	Type Type
	// Value of the dimension selected by Type; ignored for TypeComplete.
	Value string
	// ContentFlags toggle optional columns. They are not interpreted here.
	ContentFlags map[string]bool
}

// Column of an exported table.
type Column struct {
	Key    string
	Header string
	// Flag names the content flag that must be on for the column to appear.
	// Empty means always shown.
	Flag string
}

// Document is the renderer input: a titled table plus the untouched content flags.
type Document struct {
	Title       string
	Entity      string
	Config      Configuration
	Columns     []Column
	Rows        []map[string]any
	Flags       map[string]bool
	GeneratedAt time.Time
}

// VisibleColumns returns the columns enabled by the document's flags.
func (d Document) VisibleColumns() []Column {
	out := make([]Column, 0, len(d.Columns))
	for _, c := range d.Columns {
		if c.Flag == "" || d.Flags[c.Flag] {
			out = append(out, c)
		}
	}
	return out
}

// Output is a rendered report. Body is empty when the renderer delivers the
// report elsewhere and only acknowledges it.
type Output struct {
	ContentType string
	FileName    string
	Body        []byte
}

// Renderer turns a document into an export.
type Renderer interface {
	Render(ctx context.Context, doc Document) (*Output, error)
}
