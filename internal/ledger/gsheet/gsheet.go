// Package gsheet reads the transaction ledger from a Google Sheet that
// mirrors the bank export, for setups where the workbook lives in
// Google Drive instead of on disk.
package gsheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
)

type Source struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

var _ ledger.Source = (*Source)(nil)

// NewFromEnv builds a Sheets-backed ledger source.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: LEDGER_SHEET_NAME (default "Операции") and service-account
// credentials via GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE
// or GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Source, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	sheetName := strings.TrimSpace(os.Getenv("LEDGER_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Операции"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Source{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

func newSheetsService(ctx context.Context) (*sheetsapi.Service, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentials []byte
	switch {
	case inline != "":
		credentials = []byte(inline)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentials = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := sheetsapi.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// Load fetches the operations sheet and maps it through the shared
// column mapping. The first row must be the export header.
func (s *Source) Load(ctx context.Context) ([]core.Record, error) {
	rng := fmt.Sprintf("%s!A:H", s.sheetName)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	if len(resp.Values) == 0 {
		return []core.Record{}, nil
	}

	cols := ledger.MapColumns(toStrings(resp.Values[0]))
	records := make([]core.Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		records = append(records, cols.Row(toStrings(row)))
	}
	return records, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
