// Package xlsx renders report documents as Excel workbooks.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gestobra/internal/domain/reports"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// header row; the title sits in A1 and a blank line separates them
const headerRow = 3

// Renderer implements reports.Renderer.
type Renderer struct {
	loc *time.Location
}

var _ reports.Renderer = (*Renderer)(nil)

// New creates a renderer that prints dates in loc (UTC when nil).
func New(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc}
}

func (r *Renderer) Render(ctx context.Context, doc reports.Document) (*reports.Output, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := f.SetCellValue(sheet, "A1", doc.Title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}

	columns := doc.VisibleColumns()
	header := make([]any, 0, len(columns))
	for _, c := range columns {
		header = append(header, c.Header)
	}
	cell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range doc.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values := make([]any, 0, len(columns))
		for _, c := range columns {
			values = append(values, r.cellValue(row[c.Key]))
		}

		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &reports.Output{
		ContentType: ContentType,
		FileName:    FileName(doc),
		Body:        buf.Bytes(),
	}, nil
}

// cellValue converts row values into something excelize stores natively.
func (r *Renderer) cellValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return val.InexactFloat64()
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.In(r.loc).Format("2006-01-02")
	case *time.Time:
		if val == nil || val.IsZero() {
			return ""
		}
		return val.In(r.loc).Format("2006-01-02")
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

// FileName builds "materials_by_stock_level_critical_20260301.xlsx".
func FileName(doc reports.Document) string {
	parts := []string{doc.Entity, string(doc.Config.Type)}
	if doc.Config.Type != reports.TypeComplete && doc.Config.Value != "" {
		parts = append(parts, doc.Config.Value)
	}
	parts = append(parts, doc.GeneratedAt.Format("20060102"))
	return strings.ReplaceAll(strings.Join(parts, "_"), " ", "-") + ".xlsx"
}
