package memory

import (
	"context"
	"testing"

	"kopilka/internal/core"
)

func TestStore_LoadReturnsCopy(t *testing.T) {
	store := New(
		core.Record{PaymentDate: "01.01.2023", Amount: -1},
		core.Record{PaymentDate: "02.01.2023", Amount: -2},
	)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d records, want 2", len(got))
	}

	// Mutating the result must not leak into the store.
	got[0].Amount = 999
	again, _ := store.Load(context.Background())
	if again[0].Amount != -1 {
		t.Errorf("store mutated through Load result: %v", again[0])
	}
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	store := New()
	store.Append(core.Record{Description: "a"})
	store.Append(core.Record{Description: "b"}, core.Record{Description: "c"})

	got, _ := store.Load(context.Background())
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, d := range want {
		if got[i].Description != d {
			t.Errorf("record %d = %q, want %q", i, got[i].Description, d)
		}
	}
}
