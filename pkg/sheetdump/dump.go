package sheetdump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/output"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/parser"
	"github.com/xuri/excelize/v2"
)

// Load opens the workbook and reads up to opts.Limit rows of opts.SheetName.
func Load(opts Options) (*models.SheetDump, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := openSheet(opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parser.ReadRows(f, opts.SheetName, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", opts.SheetName, err)
	}

	// Every row is padded to the sheet's width.
	width, err := parser.SheetWidth(f, opts.SheetName)
	if err != nil {
		width = 0
	}
	if w := parser.RowsWidth(rows); w > width {
		width = w
	}

	return &models.SheetDump{
		BookName:  filepath.Base(opts.Path),
		SheetName: opts.SheetName,
		Width:     width,
		Rows:      rows,
	}, nil
}

// LoadSchema opens the workbook and parses every row of opts.SheetName as
// staging table definitions. opts.Limit is ignored.
func LoadSchema(opts Options) ([]models.Table, error) {
	f, err := openSheet(opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parser.ReadRows(f, opts.SheetName, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", opts.SheetName, err)
	}
	return parser.ParseSchema(rows), nil
}

// openSheet opens the workbook and checks that opts.SheetName exists.
// The caller closes the returned file.
func openSheet(opts Options) (*excelize.File, error) {
	if _, err := os.Stat(opts.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewFileAccessError(opts.Path, ErrFileNotFound)
		}
		return nil, NewFileAccessError(opts.Path, err)
	}

	f, err := excelize.OpenFile(opts.Path)
	if err != nil {
		return nil, NewFileAccessError(opts.Path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	if !hasSheet(f, opts.SheetName) {
		f.Close()
		return nil, NewMissingSheetError(opts.Path, opts.SheetName, excelize.ErrSheetNotExist{SheetName: opts.SheetName})
	}
	return f, nil
}

// hasSheet reports whether the workbook has a sheet named exactly name.
// excelize matches sheet names case-insensitively.
func hasSheet(f *excelize.File, name string) bool {
	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// Dump reads the sheet described by opts and writes it to w.
// Nothing is written when the workbook or sheet cannot be read.
func Dump(w io.Writer, opts Options) error {
	dump, err := Load(opts)
	if err != nil {
		return err
	}
	return output.Write(w, dump, opts.Title())
}

// DumpSchema parses the sheet described by opts as table definitions and
// writes their CREATE TABLE scripts to w.
func DumpSchema(w io.Writer, opts Options) error {
	tables, err := LoadSchema(opts)
	if err != nil {
		return err
	}
	return output.WriteSchema(w, tables)
}
