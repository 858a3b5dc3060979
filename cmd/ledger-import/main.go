// ledger-import copies the bank's Excel export into the sqlite ledger
// so the server can run with LEDGER_BACKEND=sqlite.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"kopilka/internal/config"
	sqliteledger "kopilka/internal/ledger/sqlite"
	"kopilka/internal/ledger/xlsx"
	applog "kopilka/internal/log"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := applog.New(cfg.LogLevel)

	from := flag.String("from", cfg.LedgerXLSXPath, "path of the operations workbook")
	to := flag.String("to", cfg.SQLiteDBPath, "path of the sqlite ledger")
	sheet := flag.String("sheet", cfg.LedgerSheetName, "workbook sheet name (first sheet when empty)")
	flag.Parse()

	ctx := context.Background()

	var src *xlsx.Source
	if *sheet != "" {
		src = xlsx.NewSheet(*from, *sheet)
	} else {
		src = xlsx.New(*from)
	}
	records, err := src.Load(ctx)
	if err != nil {
		logger.Error("Failed to read workbook", "error", err, "path", *from)
		os.Exit(1)
	}

	db, err := sqliteledger.Open(*to)
	if err != nil {
		logger.Error("Failed to open sqlite ledger", "error", err, "path", *to)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Replace(ctx, records); err != nil {
		logger.Error("Import failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Ledger imported", "records", len(records), "from", *from, "to", *to)
}
