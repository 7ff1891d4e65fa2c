package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
)

// Mapping sheet column positions (0-based).
const (
	colTableName = iota
	colColumnName
	colDataType
	colSize
	colPrimaryKey
	colForeignKey
	colDescription
	schemaColumns
)

// ParseSchema builds table definitions from mapping sheet rows. The first
// row is the header. Blank rows and rows without a table name are skipped.
// Tables keep the order in which their name first appears.
func ParseSchema(rows []models.Row) []models.Table {
	var tables []models.Table
	index := make(map[string]int)

	for i, row := range rows {
		if i == 0 {
			continue
		}

		fields := make([]string, schemaColumns)
		blank := true
		for col := range fields {
			if col < len(row.Cells) {
				fields[col] = fieldText(row.Cells[col])
			}
			if fields[col] != "" {
				blank = false
			}
		}
		if blank || fields[colTableName] == "" {
			continue
		}

		name := fields[colTableName]
		idx, ok := index[name]
		if !ok {
			idx = len(tables)
			index[name] = idx
			tables = append(tables, models.Table{Name: name})
		}

		tables[idx].Columns = append(tables[idx].Columns, models.Column{
			Name:        fields[colColumnName],
			DataType:    fields[colDataType],
			Size:        fields[colSize],
			PrimaryKey:  strings.EqualFold(fields[colPrimaryKey], "Oui"),
			ForeignKey:  fields[colForeignKey],
			Description: fields[colDescription],
		})
	}

	return tables
}

// fieldText returns a mapping cell as trimmed text. Numbers are truncated to
// integers since sizes and flags are whole values.
func fieldText(c models.Cell) string {
	switch v := c.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(c.Text())
	}
}
