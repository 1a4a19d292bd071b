package exquote

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exquote-go/pkg/exquote/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not an xlsx or xls workbook.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// ExtractionError represents a failure to read one workbook or sheet.
type ExtractionError struct {
	Path      string
	SheetName string
	Component string // "open", "read"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s (%s): %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q (%s): %v", e.Path, e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
