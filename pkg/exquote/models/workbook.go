package models

import "time"

// FileQuote represents the extraction result for one workbook file.
type FileQuote struct {
	// Path is the path the file was read from.
	Path string `json:"path"`
	// BookName is the workbook file name (no directory).
	BookName string `json:"book_name"`
	// Sheets lists the extracted sheets in workbook order.
	Sheets []SheetQuote `json:"sheets,omitempty"`
	// Error is set when the file could not be read; Sheets is then empty.
	Error string `json:"error,omitempty"`
}

// BatchResult is the outcome of extracting many files in one run.
type BatchResult struct {
	// RunID identifies the batch run.
	RunID string `json:"run_id"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// Files holds per-file results in input order.
	Files []FileQuote `json:"files"`
}

// Failed returns the files that could not be read.
func (b *BatchResult) Failed() []FileQuote {
	var failed []FileQuote
	for _, f := range b.Files {
		if f.Error != "" {
			failed = append(failed, f)
		}
	}
	return failed
}
