package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInDateFmts lists built-in number format IDs that render dates or times.
var builtInDateFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateCell reports whether the cell's number format renders a date or time.
func isDateCell(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return builtInDateFmts[style.NumFmt]
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	// Only the first (positive) section decides.
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}

	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			// Elapsed-time tokens like [h] or [mm] still mark a time format.
			if end := strings.IndexByte(code[i:], ']'); end > 0 {
				token := strings.ToLower(code[i+1 : i+end])
				if token != "" && strings.Trim(token, "hms") == "" {
					return true
				}
			}
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}
