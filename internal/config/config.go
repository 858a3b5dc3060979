// Package config collects the application configuration from the
// environment. Callers load .env first (the cmds do) so a local file
// and real environment variables behave the same.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Ledger backends.
const (
	BackendXLSX   = "xlsx"
	BackendSQLite = "sqlite"
	BackendSheets = "sheets"
	BackendMemory = "memory"
)

type Config struct {
	// HTTP server
	Port string

	// Ledger source
	LedgerBackend   string
	LedgerXLSXPath  string
	LedgerSheetName string
	SQLiteDBPath    string

	// User settings file
	SettingsPath string

	// Market data providers
	RatesAPIURL  string
	RatesAPIKey  string
	StocksAPIURL string
	StocksAPIKey string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		LedgerBackend:   getEnv("LEDGER_BACKEND", BackendXLSX),
		LedgerXLSXPath:  getEnv("LEDGER_XLSX_PATH", "data/operations.xlsx"),
		LedgerSheetName: getEnv("LEDGER_SHEET_NAME", ""),
		SQLiteDBPath:    getEnv("SQLITE_DB_PATH", "data/ledger.db"),

		SettingsPath: getEnv("USER_SETTINGS_PATH", "user_settings.json"),

		RatesAPIURL:  getEnv("RATES_API_URL", "https://api.apilayer.com/exchangerates_data/latest"),
		RatesAPIKey:  getEnv("API_KEY_CUR", ""),
		StocksAPIURL: getEnv("STOCKS_API_URL", "https://www.alphavantage.co/query"),
		StocksAPIKey: getEnv("API_KEY_STOCK", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration, collecting every problem instead
// of stopping at the first one.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LedgerBackend {
	case BackendXLSX:
		if c.LedgerXLSXPath == "" {
			problems = append(problems, "ledger workbook path cannot be empty with the xlsx backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "sqlite ledger path cannot be empty with the sqlite backend")
		}
	case BackendSheets, BackendMemory:
		// Sheets credentials come straight from env in the gsheet package.
	default:
		problems = append(problems, fmt.Sprintf("invalid ledger backend '%s': must be one of [%s %s %s %s]",
			c.LedgerBackend, BackendXLSX, BackendSQLite, BackendSheets, BackendMemory))
	}

	for _, api := range []struct {
		name string
		raw  string
	}{
		{"rates API URL", c.RatesAPIURL},
		{"stocks API URL", c.StocksAPIURL},
	} {
		u, err := url.Parse(api.raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("invalid %s '%s'", api.name, api.raw))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
