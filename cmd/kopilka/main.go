package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"kopilka/internal/config"
	"kopilka/internal/dashboard"
	apphttp "kopilka/internal/http"
	"kopilka/internal/ledger"
	"kopilka/internal/ledger/gsheet"
	"kopilka/internal/ledger/memory"
	sqliteledger "kopilka/internal/ledger/sqlite"
	"kopilka/internal/ledger/xlsx"
	applog "kopilka/internal/log"
	"kopilka/internal/market"
	"kopilka/internal/settings"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := applog.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var source ledger.Source
	switch cfg.LedgerBackend {
	case config.BackendSQLite:
		db, err := sqliteledger.Open(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open sqlite ledger", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer db.Close()
		source = db
	case config.BackendSheets:
		src, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets ledger", "error", err)
			os.Exit(1)
		}
		source = src
	case config.BackendMemory:
		source = memory.New()
	default:
		if cfg.LedgerSheetName != "" {
			source = xlsx.NewSheet(cfg.LedgerXLSXPath, cfg.LedgerSheetName)
		} else {
			source = xlsx.New(cfg.LedgerXLSXPath)
		}
	}
	logger.Info("Ledger backend initialized", "backend", cfg.LedgerBackend)

	pages := dashboard.New(
		source,
		market.NewExchangeClient(cfg.RatesAPIURL, cfg.RatesAPIKey),
		market.NewStockClient(cfg.StocksAPIURL, cfg.StocksAPIKey),
		settings.NewStore(cfg.SettingsPath),
	)

	srv := apphttp.NewServer(":"+cfg.Port, pages, source)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
