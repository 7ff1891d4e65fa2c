package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetWidth returns the number of columns from column A to the last column
// of the sheet's used range. Returns 0 if the sheet declares no dimension.
func SheetWidth(f *excelize.File, sheetName string) (int, error) {
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return 0, err
	}

	lastCol, ok := parseLastColumn(ref)
	if !ok {
		return 0, nil
	}
	return lastCol, nil
}

// parseLastColumn returns the end column (1-based) of a range string like
// $A$1:$D$10. A single cell reference such as E7 is its own end.
func parseLastColumn(rangeStr string) (int, bool) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if rangeStr == "" {
		return 0, false
	}

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return 0, false
	}

	if _, _, err := excelize.CellNameToCoordinates(parts[0]); err != nil {
		return 0, false
	}

	endCol, _, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return endCol, true
}
