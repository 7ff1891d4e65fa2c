// Package sheetdump prints the rows of one worksheet as plain text.
package sheetdump

import "fmt"

const (
	// DefaultWorkbookName is the workbook file looked up next to the program.
	DefaultWorkbookName = "Modeles_Mappings.xlsx"
	// DefaultSheetName is the worksheet dumped by default.
	DefaultSheetName = "MODELE_STAGING"
	// DefaultLimit is the maximum number of rows printed.
	DefaultLimit = 100
)

// Options configures a dump.
type Options struct {
	// Path is the workbook file path.
	Path string
	// SheetName is the worksheet to dump.
	SheetName string
	// Limit caps the number of rows read, header rows included.
	Limit int
}

// DefaultOptions returns default dump options for the workbook at path.
func DefaultOptions(path string) Options {
	return Options{
		Path:      path,
		SheetName: DefaultSheetName,
		Limit:     DefaultLimit,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Limit < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, o.Limit)
	}
	return nil
}

// Title returns the heading line printed between the opening banners.
func (o Options) Title() string {
	return "CONTENU DE L'ONGLET " + o.SheetName
}
