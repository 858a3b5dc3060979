package analytics

import (
	"math"
	"sort"

	"kopilka/internal/core"
)

// depositCategory labels top-up rows that never belong in a spend rating.
const depositCategory = "Пополнения"

// ratingSize caps the rating length.
const ratingSize = 5

// RankedTransaction is one row of the top-transactions rating. Amount is
// reported as an absolute value regardless of direction.
type RankedTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TransactionRating returns up to five transactions with the largest
// absolute amounts, deposits excluded. Equal amounts keep ledger order.
func TransactionRating(ledger []core.Record) []RankedTransaction {
	picked := make([]core.Record, 0, len(ledger))
	for _, r := range ledger {
		if r.Category == depositCategory || !r.HasAmount() {
			continue
		}
		picked = append(picked, r)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return math.Abs(picked[i].Amount) > math.Abs(picked[j].Amount)
	})
	if len(picked) > ratingSize {
		picked = picked[:ratingSize]
	}

	out := make([]RankedTransaction, 0, len(picked))
	for _, r := range picked {
		out = append(out, RankedTransaction{
			Date:        r.PaymentDate,
			Amount:      math.Abs(r.Amount),
			Category:    r.Category,
			Description: r.Description,
		})
	}
	return out
}
