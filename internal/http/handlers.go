package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kopilka/internal/analytics"
	"kopilka/internal/reports"
)

// handleDashboard returns the assembled main page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	page, err := s.pages.MainPage(r.Context(), time.Now())
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard build failed", "error", err)
		writeError(w, http.StatusBadGateway, "dashboard unavailable")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// handleSpendingReport returns the 90-day category spending report.
// A malformed date query value is the caller's mistake and earns a 400;
// dirty ledger rows are skipped inside the report.
func (s *Server) handleSpendingReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	date := r.URL.Query().Get("date")

	records, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		writeError(w, http.StatusBadGateway, "ledger unavailable")
		return
	}

	entries, err := reports.SpendingByCategory(records, category, date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be DD.MM.YYYY")
		return
	}
	doc, err := reports.RenderJSON(entries)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report encoding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "report encoding failed")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// handleTransactions returns the rows inside the 30-day window ending
// at the date query value. No date means no rows.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	records, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		writeError(w, http.StatusBadGateway, "ledger unavailable")
		return
	}
	filtered := analytics.FilterByDate(r.URL.Query().Get("date"), records)

	// Records go out through a transport shape: a NaN amount is not
	// representable in JSON and becomes null.
	out := make([]transaction, 0, len(filtered))
	for _, rec := range filtered {
		tx := transaction{
			Date:        rec.PaymentDate,
			CardNumber:  rec.CardNumber,
			Status:      rec.Status,
			Currency:    rec.Currency,
			Category:    rec.Category,
			MCC:         rec.MCC,
			Description: rec.Description,
		}
		if rec.HasAmount() {
			amount := rec.Amount
			tx.Amount = &amount
		}
		out = append(out, tx)
	}
	writeJSON(w, http.StatusOK, out)
}

type transaction struct {
	Date        string   `json:"date"`
	CardNumber  string   `json:"card_number"`
	Status      string   `json:"status"`
	Amount      *float64 `json:"amount"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	MCC         int      `json:"mcc"`
	Description string   `json:"description"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
