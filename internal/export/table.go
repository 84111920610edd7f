// Package export serialises list snapshots to spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Content types of the supported formats.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Table is a header row followed by data rows. Cells may be strings,
// integers or decimal amounts.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
}

// WriteCSV emits the table as CSV.
func WriteCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cellText(cell)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX emits the table as a single-sheet workbook with a bold header
// row and an auto filter over the data.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	for i, header := range t.Header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"1", header); err != nil {
			return err
		}
		_ = f.SetColWidth(sheet, col, col, 18)
	}
	for r, row := range t.Rows {
		for i, cell := range row {
			ref, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, ref, cellValue(cell)); err != nil {
				return err
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(sheet, 1, 1, style)
	}
	if len(t.Header) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(t.Header))
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(t.Rows)+1)
		if err := f.AutoFilter(sheet, ref, []excelize.AutoFilterOptions{}); err != nil {
			return fmt.Errorf("export: auto filter: %w", err)
		}
	}
	_, err = f.WriteTo(w)
	return err
}

// Serve writes the table as an attachment in the requested format
// ("csv" or "xlsx").
func Serve(w http.ResponseWriter, format, basename string, t Table) error {
	switch format {
	case "csv":
		w.Header().Set("Content-Type", CSVContentType)
		w.Header().Set("Content-Disposition", attachment(basename+".csv"))
		return WriteCSV(w, t)
	case "xlsx":
		w.Header().Set("Content-Type", XLSXContentType)
		w.Header().Set("Content-Disposition", attachment(basename+".xlsx"))
		return WriteXLSX(w, t)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

func attachment(filename string) string {
	return "attachment; filename=" + strconv.Quote(filename)
}

func cellText(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case decimal.Decimal:
		return value.StringFixed(2)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprint(value)
	}
}

func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		f, _ := d.Round(2).Float64()
		return f
	}
	return v
}
