package exceldiff

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not an .xlsx workbook.
var ErrUnsupportedFormat = errors.New("not a .xlsx file")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoSheets indicates the workbook has no sheets to read.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadError represents an error while reading a workbook.
type ReadError struct {
	Path  string
	Sheet string // empty when the failure is not sheet specific
	Err   error
}

func (e *ReadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to read sheet %q of %s: %v", e.Sheet, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path, sheet string, err error) *ReadError {
	return &ReadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
