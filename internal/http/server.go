// Package http exposes the analytics over a small JSON API: the main
// dashboard page, the category spending report and the date filter.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"kopilka/internal/dashboard"
	"kopilka/internal/ledger"
)

// PageBuilder assembles the dashboard payload.
type PageBuilder interface {
	MainPage(ctx context.Context, now time.Time) (dashboard.Page, error)
}

type Server struct {
	http.Server
	pages  PageBuilder
	source ledger.Source
}

// NewServer wires routes and returns a ready-to-run server.
func NewServer(addr string, pages PageBuilder, source ledger.Source) *Server {
	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		pages:  pages,
		source: source,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/dashboard", s.withRequestLog(s.handleDashboard))
	mux.HandleFunc("/api/reports/spending", s.withRequestLog(s.handleSpendingReport))
	mux.HandleFunc("/api/transactions", s.withRequestLog(s.handleTransactions))

	return s
}

// withRequestLog tags each request with an id and logs start/finish
// with the resulting status.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		slog.InfoContext(r.Context(), "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(r.Context(), "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
