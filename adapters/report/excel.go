package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"curveval/domain/eval"
)

// ExcelExporter writes comparison tables into an xlsx workbook, one sheet
// per metric.
type ExcelExporter struct{}

// NewExcelExporter creates an Excel exporter
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// Export writes the tables to path in the given metric order.
func (e *ExcelExporter) Export(path string, names []string, tables map[string]*eval.ComparisonTable) error {
	if len(names) == 0 {
		return fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		table, ok := tables[name]
		if !ok {
			continue
		}

		sheet := sheetName(name)
		if i == 0 {
			// Reuse the default sheet for the first metric.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		if err := e.writeTable(f, sheet, table); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
		}
	}

	return f.SaveAs(path)
}

func (e *ExcelExporter) writeTable(f *excelize.File, sheet string, table *eval.ComparisonTable) error {
	for col, title := range table.Columns() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, row := range table.Rows {
		values := []interface{}{
			string(row.Case),
			row.PValue,
			row.Score,
			row.LeftQuantile,
			row.RightQuantile,
			string(row.Decision),
		}
		if row.Overfit != nil {
			values = append(values, row.Overfit.IterDiff, row.Overfit.IterPValue)
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetName trims a metric name to the 31-character sheet name limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
