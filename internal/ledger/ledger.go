// Package ledger defines the port every transaction source implements
// and the column mapping shared by the spreadsheet-shaped backends.
package ledger

import (
	"context"
	"strconv"
	"strings"

	"kopilka/internal/core"
)

// Source provides the ordered transaction ledger. Order is source
// order; the aggregations depend on it for first-seen and tie-break
// semantics.
type Source interface {
	Load(ctx context.Context) ([]core.Record, error)
}

// Column headers of the bank export, as they appear in the first row of
// the operations sheet.
const (
	ColPaymentDate = "Дата платежа"
	ColCardNumber  = "Номер карты"
	ColStatus      = "Статус"
	ColAmount      = "Сумма платежа"
	ColCurrency    = "Валюта платежа"
	ColCategory    = "Категория"
	ColMCC         = "MCC"
	ColDescription = "Описание"
)

// Columns maps header names to their positions in a header row.
// Missing headers map to -1 so lookups degrade to empty cells.
type Columns map[string]int

func MapColumns(header []string) Columns {
	cols := Columns{
		ColPaymentDate: -1,
		ColCardNumber:  -1,
		ColStatus:      -1,
		ColAmount:      -1,
		ColCurrency:    -1,
		ColCategory:    -1,
		ColMCC:         -1,
		ColDescription: -1,
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, known := cols[name]; known {
			cols[name] = i
		}
	}
	return cols
}

// Row converts one data row into a Record. Cells are taken verbatim;
// the amount becomes NaN when missing or unparsable so downstream
// aggregations can skip the row instead of the load failing.
func (c Columns) Row(cells []string) core.Record {
	cell := func(name string) string {
		i := c[name]
		if i < 0 || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	mcc, _ := strconv.Atoi(cell(ColMCC))
	return core.Record{
		PaymentDate: cell(ColPaymentDate),
		CardNumber:  cell(ColCardNumber),
		Status:      cell(ColStatus),
		Amount:      core.ParseAmount(cell(ColAmount)),
		Currency:    cell(ColCurrency),
		Category:    cell(ColCategory),
		MCC:         mcc,
		Description: cell(ColDescription),
	}
}
