// Package xlsx reads the transaction ledger from the bank's Excel
// export (operations workbook).
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
)

type Source struct {
	path  string
	sheet string
}

var _ ledger.Source = (*Source)(nil)

// New reads from the first sheet of the workbook at path.
func New(path string) *Source {
	return &Source{path: path}
}

// NewSheet reads from a named sheet instead of the first one.
func NewSheet(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

// Load returns the workbook rows in sheet order. A missing workbook is
// an empty ledger, not an error: the export may not have landed yet.
// Dirty cells are carried through as-is for the aggregations to skip.
func (s *Source) Load(_ context.Context) ([]core.Record, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []core.Record{}, nil
		}
		return nil, fmt.Errorf("open ledger workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []core.Record{}, nil
	}

	cols := ledger.MapColumns(rows[0])
	records := make([]core.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, cols.Row(row))
	}
	return records, nil
}
