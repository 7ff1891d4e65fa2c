package sheetdump

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the workbook file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingSheet indicates the workbook has no sheet with the requested name.
var ErrMissingSheet = errors.New("missing sheet")

// ErrInvalidLimit indicates a row limit below 1.
var ErrInvalidLimit = errors.New("row limit must be at least 1")

// FileAccessError reports a workbook that is absent, unreadable or invalid.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot open workbook %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// NewFileAccessError creates a new FileAccessError.
func NewFileAccessError(path string, err error) *FileAccessError {
	return &FileAccessError{
		Path: path,
		Err:  err,
	}
}

// MissingSheetError reports a workbook lacking the requested sheet.
type MissingSheetError struct {
	Path      string
	SheetName string
	Err       error // usually excelize.ErrSheetNotExist
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("workbook %s has no sheet %q", e.Path, e.SheetName)
}

func (e *MissingSheetError) Unwrap() error {
	return e.Err
}

// Is matches ErrMissingSheet.
func (e *MissingSheetError) Is(target error) bool {
	return target == ErrMissingSheet
}

// NewMissingSheetError creates a new MissingSheetError.
func NewMissingSheetError(path, sheetName string, err error) *MissingSheetError {
	return &MissingSheetError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}
