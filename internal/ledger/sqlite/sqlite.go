// Package sqlite reads the transaction ledger from a sqlite file
// produced by the import tool. A database ledger loads much faster
// than re-parsing the workbook on every request.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
)

type Source struct {
	db *sql.DB
}

var _ ledger.Source = (*Source)(nil)

// Open opens (creating if needed) the ledger database at path and
// brings its schema up to date.
func Open(path string) (*Source, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger db directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping ledger db: %w", err)
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, err
	}
	return &Source{db: db}, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}

// Load returns operations in insertion order, which the import tool
// guarantees to be export order. NULL cells come back as empty strings
// and a NaN amount, matching the workbook reader.
func (s *Source) Load(ctx context.Context) ([]core.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payment_date, card_number, status, amount, currency, category, mcc, description
		FROM operations
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	records := []core.Record{}
	for rows.Next() {
		var (
			date, card, status, currency, category, description sql.NullString
			amount                                              sql.NullFloat64
			mcc                                                 int
		)
		if err := rows.Scan(&date, &card, &status, &amount, &currency, &category, &mcc, &description); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		r := core.Record{
			PaymentDate: date.String,
			CardNumber:  card.String,
			Status:      status.String,
			Amount:      math.NaN(),
			Currency:    currency.String,
			Category:    category.String,
			MCC:         mcc,
			Description: description.String,
		}
		if amount.Valid {
			r.Amount = amount.Float64
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return records, nil
}

// Replace rewrites the operations table with the given records in one
// transaction, preserving their order. Used by the import tool; the
// server side only ever reads.
func (s *Source) Replace(ctx context.Context, records []core.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM operations`); err != nil {
		return fmt.Errorf("clear operations: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO operations (payment_date, card_number, status, amount, currency, category, mcc, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		amount := any(r.Amount)
		if !r.HasAmount() {
			amount = nil
		}
		if _, err := stmt.ExecContext(ctx,
			nullable(r.PaymentDate), nullable(r.CardNumber), nullable(r.Status),
			amount, nullable(r.Currency), nullable(r.Category), r.MCC, nullable(r.Description),
		); err != nil {
			return fmt.Errorf("insert operation: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
