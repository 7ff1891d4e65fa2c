package models

import "strings"

// Column is one field of a staging table as declared in the mapping sheet.
type Column struct {
	// Name is the column name.
	Name string `json:"name"`
	// DataType is the declared type (VARCHAR2, INT, DATE, DECIMAL, ...).
	DataType string `json:"data_type"`
	// Size is the declared size, e.g. "255" or "15,2".
	Size string `json:"size,omitempty"`
	// PrimaryKey is true when the sheet marks the column "Oui".
	PrimaryKey bool `json:"primary_key"`
	// ForeignKey is the referenced "table.column", if any.
	ForeignKey string `json:"foreign_key,omitempty"`
	// Description is the column comment.
	Description string `json:"description,omitempty"`
}

// Table is a staging table and its columns in sheet order.
type Table struct {
	// Name is the table name.
	Name string `json:"name"`
	// Columns holds the columns in the order they were declared.
	Columns []Column `json:"columns"`
}

// HasForeignKey reports whether the column references another table.
// Blank values and "Non" mean no reference.
func (c Column) HasForeignKey() bool {
	return c.ForeignKey != "" && !strings.EqualFold(c.ForeignKey, "Non")
}

// PostgresType maps the declared type to a PostgreSQL type.
func (c Column) PostgresType() string {
	switch strings.ToUpper(c.DataType) {
	case "ID", "INT", "INTEGER":
		return "INTEGER"
	case "VARCHAR2", "VARCHAR":
		return "VARCHAR"
	case "DATE":
		return "TIMESTAMP"
	case "DECIMAL", "NUMERIC":
		return "NUMERIC"
	case "BIGINT", "LONG":
		return "BIGINT"
	case "TEXT":
		return "TEXT"
	case "BOOLEAN", "BOOL":
		return "BOOLEAN"
	default:
		return "VARCHAR(255)"
	}
}

// SQLDefinition returns the column clause of a CREATE TABLE statement.
func (c Column) SQLDefinition() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteString(" ")

	pgType := c.PostgresType()
	switch {
	case c.PrimaryKey && pgType == "INTEGER":
		sb.WriteString("SERIAL")
	case c.PrimaryKey && pgType == "BIGINT":
		sb.WriteString("BIGSERIAL")
	default:
		sb.WriteString(pgType)
		if c.Size != "" && (pgType == "VARCHAR" || pgType == "NUMERIC") {
			sb.WriteString("(" + c.Size + ")")
		}
	}

	switch {
	case c.PrimaryKey:
		sb.WriteString(" PRIMARY KEY")
	case !c.HasForeignKey():
		sb.WriteString(" NOT NULL")
	}

	return sb.String()
}

// ForeignKeyTarget returns the REFERENCES target, rewriting "table.column"
// to "table(column)".
func (c Column) ForeignKeyTarget() string {
	ref := c.ForeignKey
	if strings.Contains(ref, "(") {
		return ref
	}
	if idx := strings.LastIndex(ref, "."); idx > 0 && idx < len(ref)-1 {
		return ref[:idx] + "(" + ref[idx+1:] + ")"
	}
	return ref
}

// CreateTableSQL returns the CREATE TABLE statement followed by one
// COMMENT ON COLUMN statement per described column.
func (t Table) CreateTableSQL() string {
	var clauses []string
	for _, col := range t.Columns {
		clauses = append(clauses, col.SQLDefinition())
	}
	for _, col := range t.Columns {
		if col.HasForeignKey() {
			clauses = append(clauses, "CONSTRAINT fk_"+t.Name+"_"+col.Name+
				" FOREIGN KEY ("+col.Name+") REFERENCES "+col.ForeignKeyTarget())
		}
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE IF NOT EXISTS " + t.Name + " (\n  ")
	sb.WriteString(strings.Join(clauses, ",\n  "))
	sb.WriteString("\n);\n")

	for _, col := range t.Columns {
		if col.Description != "" {
			sb.WriteString("COMMENT ON COLUMN " + t.Name + "." + col.Name +
				" IS " + quoteLiteral(col.Description) + ";\n")
		}
	}

	return sb.String()
}

// quoteLiteral wraps s in single quotes, doubling embedded quotes.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
