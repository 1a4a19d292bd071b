// Package exquote extracts quotation headers and line items from
// supplier spreadsheets whose layout varies from file to file.
package exquote

import "github.com/ukaji3/exquote-go/pkg/exquote/parser"

// SheetMode selects which sheets of a workbook are extracted.
type SheetMode string

const (
	// SheetsFirst extracts only the first sheet.
	SheetsFirst SheetMode = "first"
	// SheetsAll extracts every sheet.
	SheetsAll SheetMode = "all"
)

// DefaultWorkers is the batch concurrency used when Options.Workers is unset.
const DefaultWorkers = 4

// Options configures extraction behavior.
type Options struct {
	// Sheets selects which sheets are read (first, all).
	Sheets SheetMode
	// RawCellValues reads every xlsx cell unformatted, dates included.
	// By default only date-formatted cells keep their rendered text.
	RawCellValues bool
	// Workers bounds how many files ExtractAll reads at once.
	// Values below 1 mean DefaultWorkers.
	Workers int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Sheets:  SheetsFirst,
		Workers: DefaultWorkers,
	}
}

// SheetSelector returns the selector matching o.Sheets.
func (o Options) SheetSelector() parser.SheetSelector {
	if o.Sheets == SheetsAll {
		return parser.AllSheets
	}
	return parser.FirstSheet
}

// WorkerCount returns the effective batch concurrency.
func (o Options) WorkerCount() int {
	if o.Workers < 1 {
		return DefaultWorkers
	}
	return o.Workers
}
