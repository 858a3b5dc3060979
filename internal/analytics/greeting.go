// Package analytics holds the pure aggregation functions computed over
// an in-memory ledger: date filtering, per-card rollups, transaction
// ranking and the time-of-day greeting.
package analytics

import "time"

// Greeting texts by time of day.
const (
	GreetingMorning   = "Доброе утро!"
	GreetingAfternoon = "Добрый день!"
	GreetingEvening   = "Добрый вечер!"
	GreetingNight     = "Доброй ночи!"
)

// Greeting maps the hour of the given moment to a greeting: [6,12)
// morning, [12,18) afternoon, [18,23) evening, anything else night.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return GreetingMorning
	case h >= 12 && h < 18:
		return GreetingAfternoon
	case h >= 18 && h < 23:
		return GreetingEvening
	default:
		return GreetingNight
	}
}
