package analytics

import (
	"math"
	"reflect"
	"testing"

	"kopilka/internal/core"
)

func TestCardExpenses(t *testing.T) {
	tests := []struct {
		name   string
		ledger []core.Record
		want   []CardSummary
	}{
		{
			name: "groups by card in first-seen order",
			ledger: []core.Record{
				{CardNumber: "*4556", Amount: -228.0},
				{CardNumber: "*4556", Amount: -110.0},
				{CardNumber: "*7197", Amount: -525.0},
			},
			want: []CardSummary{
				{LastDigits: "4556", TotalSpent: 338.0, Cashback: 3.38},
				{LastDigits: "7197", TotalSpent: 525.0, Cashback: 5.25},
			},
		},
		{
			name:   "empty ledger",
			ledger: []core.Record{},
			want:   []CardSummary{},
		},
		{
			name: "nan rows are skipped",
			ledger: []core.Record{
				{CardNumber: "nan", Amount: math.NaN()},
				{CardNumber: "", Amount: math.NaN()},
			},
			want: []CardSummary{},
		},
		{
			name: "credits do not add to spend",
			ledger: []core.Record{
				{CardNumber: "*4556", Amount: 1000.0},
				{CardNumber: "*4556", Amount: -250.0},
			},
			want: []CardSummary{
				{LastDigits: "4556", TotalSpent: 250.0, Cashback: 2.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardExpenses(tt.ledger)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CardExpenses() = %v, want %v", got, tt.want)
			}
		})
	}
}
