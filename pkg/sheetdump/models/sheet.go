package models

// SheetDump represents the rows read from a single worksheet.
type SheetDump struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Width is the column count every row is padded to.
	Width int `json:"width"`
	// Rows contains the rows in sheet order.
	Rows []Row `json:"rows,omitempty"`
}
