package analytics

import (
	"strings"

	"kopilka/internal/core"
)

// filterWindowDays is the lookback of FilterByDate, ending at the target
// date inclusive.
const filterWindowDays = 30

// FilterByDate returns the ledger rows whose payment date falls inside
// the 30-day window ending at target (DD.MM.YYYY), in source order. The
// window is half-open: the start boundary, exactly 30 days before the
// target, is excluded. An empty target selects nothing. A malformed
// target or record date is excluded silently rather than reported: this
// filter is applied to dirty exports where row-level tolerance is the
// point.
func FilterByDate(target string, ledger []core.Record) []core.Record {
	out := []core.Record{}
	if strings.TrimSpace(target) == "" {
		return out
	}
	end, err := core.ParseDate(target)
	if err != nil {
		return out
	}
	start := end.AddDate(0, 0, -filterWindowDays)

	for _, r := range ledger {
		d, ok := r.Date()
		if !ok {
			continue
		}
		if d.After(start) && !d.After(end) {
			out = append(out, r)
		}
	}
	return out
}
