package output

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS quotations (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id          TEXT NOT NULL REFERENCES runs(run_id),
	file            TEXT NOT NULL,
	path            TEXT NOT NULL,
	sheet           TEXT NOT NULL,
	recipient       TEXT,
	date            TEXT,
	document_number TEXT,
	start_row       INTEGER NOT NULL,
	error           TEXT
);
CREATE TABLE IF NOT EXISTS products (
	quotation_id INTEGER NOT NULL REFERENCES quotations(id),
	position     INTEGER NOT NULL,
	code         TEXT NOT NULL,
	description  TEXT NOT NULL,
	quantity     INTEGER NOT NULL,
	unit         TEXT NOT NULL,
	unit_price   INTEGER NOT NULL,
	amount       INTEGER NOT NULL,
	PRIMARY KEY (quotation_id, position)
);`

// WriteSQLite appends a batch to the SQLite database at path, creating the
// schema when needed. Each sheet becomes a quotations row; failed files are
// stored with their error and no sheet.
func WriteSQLite(ctx context.Context, path string, b *models.BatchResult) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at) VALUES (?, ?)`,
		b.RunID, b.StartedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range b.Files {
		if f.Error != "" {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO quotations (run_id, file, path, sheet, start_row, error) VALUES (?, ?, ?, '', 0, ?)`,
				b.RunID, f.BookName, f.Path, f.Error); err != nil {
				return fmt.Errorf("insert failed file %s: %w", f.Path, err)
			}
			continue
		}
		for _, s := range f.Sheets {
			if err := insertSheet(ctx, tx, b.RunID, f, s); err != nil {
				return fmt.Errorf("insert %s sheet %q: %w", f.Path, s.Name, err)
			}
		}
	}
	return tx.Commit()
}

func insertSheet(ctx context.Context, tx *sql.Tx, runID string, f models.FileQuote, s models.SheetQuote) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO quotations (run_id, file, path, sheet, recipient, date, document_number, start_row)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, f.BookName, f.Path, s.Name,
		nullable(s.Header.Recipient), nullable(s.Header.Date), nullable(s.Header.DocumentNumber),
		s.StartRow)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, p := range s.Products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (quotation_id, position, code, description, quantity, unit, unit_price, amount)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, p.Code, p.Description, p.Quantity, p.Unit, p.UnitPrice, p.Amount); err != nil {
			return err
		}
	}
	return nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
