package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kopilka/internal/core"
	"kopilka/internal/dashboard"
	"kopilka/internal/ledger/memory"
)

type fakePages struct {
	page dashboard.Page
	err  error
}

func (f fakePages) MainPage(_ context.Context, _ time.Time) (dashboard.Page, error) {
	return f.page, f.err
}

func newTestServer(pages PageBuilder, records ...core.Record) *Server {
	return NewServer(":0", pages, memory.New(records...))
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(fakePages{})
	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := get(t, srv, path); rr.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rr.Code)
		}
	}
}

func TestHandleDashboard(t *testing.T) {
	srv := newTestServer(fakePages{page: dashboard.Page{Greeting: "Добрый день!"}})

	rr := get(t, srv, "/api/dashboard")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body)
	}
	var page dashboard.Page
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Greeting != "Добрый день!" {
		t.Errorf("greeting = %q", page.Greeting)
	}
}

func TestHandleDashboard_BuildFailure(t *testing.T) {
	srv := newTestServer(fakePages{err: errors.New("provider down")})
	if rr := get(t, srv, "/api/dashboard"); rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
}

func TestHandleSpendingReport(t *testing.T) {
	srv := newTestServer(fakePages{},
		core.Record{Category: "Еда", PaymentDate: "10.10.2024", Amount: 1000},
		core.Record{Category: "Еда", PaymentDate: "20.12.2024", Amount: 2000},
		core.Record{Category: "Еда", PaymentDate: "23.12.2024", Amount: 3000},
	)

	rr := get(t, srv, "/api/reports/spending?category=Еда&date=20.12.2024")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body)
	}
	var entries []struct {
		Date   string  `json:"date"`
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 || entries[0].Amount != 1000 || entries[1].Amount != 2000 {
		t.Errorf("entries = %v", entries)
	}
	if !strings.Contains(rr.Body.String(), "    \"date\"") {
		t.Errorf("report body not four-space indented:\n%s", rr.Body)
	}
}

func TestHandleSpendingReport_BadRequests(t *testing.T) {
	srv := newTestServer(fakePages{})

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing category", target: "/api/reports/spending?date=20.12.2024"},
		{name: "iso date", target: "/api/reports/spending?category=Еда&date=2024-12-20"},
		{name: "garbage date", target: "/api/reports/spending?category=Еда&date=вчера"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rr := get(t, srv, tt.target); rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestHandleTransactions(t *testing.T) {
	srv := newTestServer(fakePages{},
		core.Record{PaymentDate: "01.11.2021", Amount: -228.0, Category: "Супермаркеты"},
		core.Record{PaymentDate: "03.12.2021", Amount: -10.0, Category: "Фастфуд"},
	)

	rr := get(t, srv, "/api/transactions?date=03.11.2021")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var txs []transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(txs) != 1 || txs[0].Date != "01.11.2021" {
		t.Errorf("transactions = %v", txs)
	}

	// No date parameter filters everything out by design.
	rr = get(t, srv, "/api/transactions")
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("empty-date body = %s, want []", body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(fakePages{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}
