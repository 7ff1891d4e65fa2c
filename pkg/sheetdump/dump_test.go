package sheetdump

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/output"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with one sheet holding rows.
func writeWorkbook(t *testing.T, sheetName string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &values))
	}

	path := filepath.Join(t.TempDir(), DefaultWorkbookName)
	require.NoError(t, f.SaveAs(path))
	return path
}

func dumpLines(t *testing.T, opts Options) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, opts))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestDump(t *testing.T) {
	path := writeWorkbook(t, DefaultSheetName, [][]interface{}{
		{"Col1", "Col2", "Col3"},
		{"A", nil, 3},
		{nil, nil, nil},
		{"B", 2.5, true},
	})

	lines := dumpLines(t, DefaultOptions(path))
	banner := output.Banner(output.BannerWidth)

	expected := []string{
		banner,
		"CONTENU DE L'ONGLET MODELE_STAGING",
		banner,
		"Col1 | Col2 | Col3",
		"A |  | 3",
		" |  | ",
		"B | 2.5 | True",
		banner,
	}
	assert.Equal(t, expected, lines)
}

func TestDumpRowLimit(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		expected int
	}{
		{"empty sheet", 0, 0},
		{"below limit", 42, 42},
		{"at limit", 100, 100},
		{"above limit", 250, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]interface{}, tt.rows)
			for i := range rows {
				rows[i] = []interface{}{i + 1, "x"}
			}
			path := writeWorkbook(t, DefaultSheetName, rows)

			lines := dumpLines(t, DefaultOptions(path))
			require.Len(t, lines, tt.expected+4)
			if tt.expected > 0 {
				assert.Equal(t, "1 | x", lines[3])
				assert.Equal(t, fmt.Sprintf("%d | x", tt.expected), lines[tt.expected+2])
			}
		})
	}
}

func TestDumpHeaderCountsTowardLimit(t *testing.T) {
	rows := [][]interface{}{{"header"}}
	for i := 0; i < 120; i++ {
		rows = append(rows, []interface{}{i + 1})
	}
	path := writeWorkbook(t, DefaultSheetName, rows)

	lines := dumpLines(t, DefaultOptions(path))
	assert.Equal(t, "header", lines[3])
	assert.Equal(t, "99", lines[102])
}

func TestDumpCustomLimit(t *testing.T) {
	path := writeWorkbook(t, DefaultSheetName, [][]interface{}{{1}, {2}, {3}})
	opts := DefaultOptions(path)
	opts.Limit = 2

	lines := dumpLines(t, opts)
	assert.Len(t, lines, 6)
	assert.Equal(t, "2", lines[4])
}

func TestDumpIdempotent(t *testing.T) {
	path := writeWorkbook(t, DefaultSheetName, [][]interface{}{
		{"a", 1, nil, 4.25},
		{nil, "b"},
	})

	var first, second bytes.Buffer
	require.NoError(t, Dump(&first, DefaultOptions(path)))
	require.NoError(t, Dump(&second, DefaultOptions(path)))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestDumpMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultWorkbookName)

	var buf bytes.Buffer
	err := Dump(&buf, DefaultOptions(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var accessErr *FileAccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Equal(t, path, accessErr.Path)
	assert.Empty(t, buf.String())
}

func TestDumpInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultWorkbookName)
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))

	var buf bytes.Buffer
	err := Dump(&buf, DefaultOptions(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Empty(t, buf.String())
}

func TestDumpMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Other", [][]interface{}{{"x"}})

	var buf bytes.Buffer
	err := Dump(&buf, DefaultOptions(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSheet)

	var sheetErr excelize.ErrSheetNotExist
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, DefaultSheetName, sheetErr.SheetName)
	assert.Empty(t, buf.String())
}

func TestDumpSheetNameIsExact(t *testing.T) {
	path := writeWorkbook(t, "modele_staging", [][]interface{}{{"x"}})

	err := Dump(&bytes.Buffer{}, DefaultOptions(path))
	assert.ErrorIs(t, err, ErrMissingSheet)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions("x.xlsx").Validate())

	opts := DefaultOptions("x.xlsx")
	opts.Limit = 0
	assert.ErrorIs(t, opts.Validate(), ErrInvalidLimit)
	assert.ErrorIs(t, Dump(&bytes.Buffer{}, opts), ErrInvalidLimit)
}

func TestOptionsTitle(t *testing.T) {
	assert.Equal(t, "CONTENU DE L'ONGLET MODELE_STAGING", DefaultOptions("").Title())
}

func TestDumpSchema(t *testing.T) {
	path := writeWorkbook(t, DefaultSheetName, [][]interface{}{
		{"NOM_TABLE", "NOM_CHAMP", "TYPE_CHAMPS", "TAILLE_CHAMPS", "CLE_PRIMAIRE", "CLE_ETRANGERE", "DESCRIPTION"},
		{"stg_client", "id", "INT", nil, "Oui", "Non", "Identifiant"},
		{"stg_client", "nom", "VARCHAR2", 100, "Non"},
		{nil, nil, nil},
		{"stg_contrat", "client_id", "INT", nil, "Non", "stg_client.id"},
	})

	var buf bytes.Buffer
	require.NoError(t, DumpSchema(&buf, DefaultOptions(path)))

	expected := "CREATE TABLE IF NOT EXISTS stg_client (\n" +
		"  id SERIAL PRIMARY KEY,\n" +
		"  nom VARCHAR(100) NOT NULL\n" +
		");\n" +
		"COMMENT ON COLUMN stg_client.id IS 'Identifiant';\n" +
		"\n" +
		"CREATE TABLE IF NOT EXISTS stg_contrat (\n" +
		"  client_id INTEGER,\n" +
		"  CONSTRAINT fk_stg_contrat_client_id FOREIGN KEY (client_id) REFERENCES stg_client(id)\n" +
		");\n"
	assert.Equal(t, expected, buf.String())
}

func TestLoadSchemaReadsPastLimit(t *testing.T) {
	rows := [][]interface{}{{"NOM_TABLE", "NOM_CHAMP", "TYPE_CHAMPS"}}
	for i := 0; i < 150; i++ {
		rows = append(rows, []interface{}{"stg_big", fmt.Sprintf("c%d", i), "TEXT"})
	}
	path := writeWorkbook(t, DefaultSheetName, rows)

	tables, err := LoadSchema(DefaultOptions(path))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Columns, 150)
}

func TestDumpSchemaErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), DefaultWorkbookName)
	assert.ErrorIs(t, DumpSchema(&bytes.Buffer{}, DefaultOptions(missing)), ErrFileNotFound)

	other := writeWorkbook(t, "Other", [][]interface{}{{"x"}})
	var buf bytes.Buffer
	assert.ErrorIs(t, DumpSchema(&buf, DefaultOptions(other)), ErrMissingSheet)
	assert.Empty(t, buf.String())
}
