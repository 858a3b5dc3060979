package analytics

import "kopilka/internal/core"

// CardSummary is the per-card spend rollup: total absolute debit amount
// and the 1% cashback on it, both rounded to two decimals.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// CardExpenses groups ledger rows by card and accumulates debit spend.
// Rows without a card number or amount are skipped; credits do not
// count toward the spend total. Cards appear in first-seen order.
func CardExpenses(ledger []core.Record) []CardSummary {
	totals := map[string]float64{}
	order := []string{}

	for _, r := range ledger {
		digits, ok := r.LastDigits()
		if !ok || !r.HasAmount() {
			continue
		}
		if _, seen := totals[digits]; !seen {
			totals[digits] = 0
			order = append(order, digits)
		}
		if r.Amount < 0 {
			totals[digits] += -r.Amount
		}
	}

	out := make([]CardSummary, 0, len(order))
	for _, digits := range order {
		spent := core.Round2(totals[digits])
		out = append(out, CardSummary{
			LastDigits: digits,
			TotalSpent: spent,
			Cashback:   core.Round2(spent / 100),
		})
	}
	return out
}
