// Package parser provides Excel file parsing utilities.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads up to limit rows from a sheet, starting at row 1. A limit
// below 1 reads every row.
// Rows missing from the sheet XML are returned as empty rows so the result
// follows the sheet's natural row order. Rows past limit are never read.
func ReadRows(f *excelize.File, sheetName string, limit int) ([]models.Row, error) {
	raw, err := readRawRows(f, sheetName, limit)
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	result := make([]models.Row, 0, len(raw))
	for rowIdx, values := range raw {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(values))
		for colIdx, value := range values {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			// Formula cells show their formula, cached result or not.
			if formula, err := f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
				cells[colIdx] = models.Cell{Value: "=" + formula}
				continue
			}
			if value == "" {
				continue
			}
			cells[colIdx] = resolveCell(f, sheetName, cellName, value, date1904)
		}
		result = append(result, models.Row{R: rowNum, Cells: cells})
	}

	return result, nil
}

// readRawRows streams raw cell values with the row iterator.
func readRawRows(f *excelize.File, sheetName string, limit int) ([][]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		values, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		result = append(result, values)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveCell converts a raw cell value to its typed form.
func resolveCell(f *excelize.File, sheetName, cellName, value string, date1904 bool) models.Cell {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{Value: value}
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Cell{Value: value == "1" || strings.EqualFold(value, "true")}
	case excelize.CellTypeDate:
		if t, ok := parseISODate(value); ok {
			return models.Cell{Value: t}
		}
		return models.Cell{Value: value}
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		parsed := parseValue(value)
		serial, isNum := toFloat(parsed)
		if isNum && isDateCell(f, sheetName, cellName) {
			if v, ok := serialToValue(serial, date1904); ok {
				return models.Cell{Value: v}
			}
		}
		return models.Cell{Value: parsed}
	default:
		return models.Cell{Value: value}
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// serialToValue converts an Excel serial number to a time.Time, or to a
// time.Duration for pure time-of-day values (serial below 1).
func serialToValue(serial float64, date1904 bool) (interface{}, bool) {
	if serial < 0 {
		return nil, false
	}
	if serial < 1 {
		return time.Duration(serial * float64(24*time.Hour)).Round(time.Second), true
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return nil, false
	}
	return t.Round(time.Second), true
}

// parseISODate parses the ISO 8601 forms used by t="d" cells.
func parseISODate(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RowsWidth returns the length of the widest row.
func RowsWidth(rows []models.Row) int {
	width := 0
	for _, row := range rows {
		if len(row.Cells) > width {
			width = len(row.Cells)
		}
	}
	return width
}
