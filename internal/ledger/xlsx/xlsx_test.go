package xlsx

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "operations.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestSource_Load(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Дата платежа", "Номер карты", "Статус", "Сумма платежа", "Валюта платежа", "Категория", "MCC", "Описание"},
		{"01.11.2021", "*4556", "OK", -228.0, "RUB", "Супермаркеты", 5411, "Колхоз"},
		{"02.11.2021", "*4556", "OK", -110.0, "RUB", "Фастфуд", 5411, "Mouse Tail"},
		{"03.11.2021", "*7197", "OK", -525.0, "RUB", "Одежда и обувь", 5399, "WILDBERRIES"},
	})

	got, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Load returned %d records, want 3", len(got))
	}
	first := got[0]
	if first.PaymentDate != "01.11.2021" || first.CardNumber != "*4556" ||
		first.Amount != -228.0 || first.Category != "Супермаркеты" ||
		first.MCC != 5411 || first.Description != "Колхоз" {
		t.Errorf("first record = %+v", first)
	}
	// Ledger order is workbook order.
	if got[2].CardNumber != "*7197" {
		t.Errorf("last record card = %q, want *7197", got[2].CardNumber)
	}
}

func TestSource_Load_MissingFile(t *testing.T) {
	got, err := New(filepath.Join(t.TempDir(), "no_such.xlsx")).Load(context.Background())
	if err != nil {
		t.Fatalf("Load(missing) error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("Load(missing) = %v, want empty ledger", got)
	}
}

func TestSource_Load_DirtyRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Дата платежа", "Сумма платежа", "Категория"},
		{"nan", "nan", "Досуг"},
		{"10.10.2024", 1000.0, "Еда"},
	})

	got, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d records, want both rows kept", len(got))
	}
	if !math.IsNaN(got[0].Amount) {
		t.Errorf("dirty amount = %v, want NaN", got[0].Amount)
	}
	if _, ok := got[0].Date(); ok {
		t.Error("dirty date parsed as valid")
	}
	if got[1].Amount != 1000 || got[1].Category != "Еда" {
		t.Errorf("clean row = %+v", got[1])
	}
}
