// Package reports builds the category spending report: ledger rows of
// one category inside a 90-day window anchored at a reference date.
package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kopilka/internal/core"
)

// windowDays is both the anchor lookback and the window width: the
// window starts 90 days before the anchor and spans 90 days forward
// from that start. Reproduced from observed behavior; do not change
// without confirming the intended business rule.
const windowDays = 90

// Entry is one matched ledger row. Date keeps the original ledger
// string and Amount keeps its sign.
type Entry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SpendingByCategory collects rows of the given category whose payment
// date falls inside the window anchored at date (DD.MM.YYYY). An empty
// date anchors at now. A malformed date is a caller error and is
// returned, never defaulted; malformed per-row dates are skipped.
// Output preserves ledger order.
func SpendingByCategory(ledger []core.Record, category, date string) ([]Entry, error) {
	return spendingByCategoryAt(ledger, category, date, time.Now())
}

func spendingByCategoryAt(ledger []core.Record, category, date string, now time.Time) ([]Entry, error) {
	anchor := now
	if strings.TrimSpace(date) != "" {
		t, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse report date %q: %w", date, err)
		}
		anchor = t
	}
	start := anchor.AddDate(0, 0, -windowDays)
	end := start.AddDate(0, 0, windowDays)

	entries := []Entry{}
	for _, r := range ledger {
		if r.Category != category {
			continue
		}
		d, ok := r.Date()
		if !ok {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		entries = append(entries, Entry{Date: r.PaymentDate, Amount: r.Amount})
	}
	return entries, nil
}

// RenderJSON encodes entries with four-space indentation, leaving
// non-ASCII text as-is.
func RenderJSON(entries []Entry) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("encode spending report: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
