// Package core defines the transaction record shape shared by every
// ledger source and aggregation in the application.
package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the textual date format used at every boundary of the
// system (ledger cells, report parameters, HTTP query values).
const DateLayout = "02.01.2006"

// Record is a single row of the transaction ledger. String fields keep
// the raw boundary values: PaymentDate stays a DD.MM.YYYY string (or
// empty/"nan" when the export had no value) and Amount is NaN when the
// cell was missing or unparsable. The amount sign encodes direction:
// negative for debits, positive for credits.
type Record struct {
	PaymentDate string
	CardNumber  string
	Status      string
	Amount      float64
	Currency    string
	Category    string
	MCC         int
	Description string
}

// Date returns the payment date as a calendar value. The second result
// is false when the date is absent or not a valid DD.MM.YYYY string;
// such records are excluded from every date-bounded aggregation.
func (r Record) Date() (time.Time, bool) {
	s := strings.TrimSpace(r.PaymentDate)
	if s == "" || strings.EqualFold(s, "nan") {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HasAmount reports whether the record carries a usable amount.
func (r Record) HasAmount() bool {
	return !math.IsNaN(r.Amount)
}

// LastDigits returns the last four digits of the card number. The second
// result is false when the card number is absent.
func (r Record) LastDigits() (string, bool) {
	s := strings.TrimSpace(r.CardNumber)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	return s, true
}

// ParseDate parses a caller-supplied boundary date in DD.MM.YYYY form.
// Unlike per-record dates, a malformed value here is an error the caller
// must see: it denotes misuse, not dirty data.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseAmount converts a raw cell value into a signed amount. Missing or
// unparsable cells become NaN so that row-level dirt is carried through
// instead of failing the whole load.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
