package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

// ErrUnsupportedFormat indicates the file is neither xlsx nor legacy xls.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// SheetError reports a failure reading one sheet of a workbook.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// SheetSelector decides by 0-based position which sheets are read.
type SheetSelector func(index int) bool

// FirstSheet selects only the first sheet of a workbook.
func FirstSheet(index int) bool { return index == 0 }

// AllSheets selects every sheet.
func AllSheets(int) bool { return true }

// ReadWorkbook returns the grids of the selected sheets of an xlsx, xlsm or
// xls file. A ".xls" file that is actually a zipped workbook is read as xlsx.
func ReadWorkbook(path string, sel SheetSelector, raw bool) ([]models.SheetGrid, error) {
	if sel == nil {
		sel = FirstSheet
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path, sel, raw)
	case ".xls":
		legacy, err := IsLegacyWorkbook(path)
		if err != nil {
			return nil, err
		}
		if legacy {
			return readXLS(path, sel)
		}
		return readXLSX(path, sel, raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// IsWorkbookName reports whether name has a workbook extension and is not
// an Office lock file.
func IsWorkbookName(name string) bool {
	if strings.HasPrefix(name, "~") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}
