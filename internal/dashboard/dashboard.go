// Package dashboard assembles the main page: greeting, per-card spend
// rollups, the top-transactions rating and the market quotes the user
// asked for in their settings file.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"kopilka/internal/analytics"
	"kopilka/internal/ledger"
	"kopilka/internal/market"
	"kopilka/internal/settings"
)

// SettingsStore yields the current user preferences. Reads happen per
// page build so settings edits show up without a restart.
type SettingsStore interface {
	Load() settings.Settings
}

// Page is the main page payload.
type Page struct {
	Greeting        string                        `json:"greeting"`
	Cards           []analytics.CardSummary       `json:"cards"`
	TopTransactions []analytics.RankedTransaction `json:"top_transactions"`
	CurrencyRates   []market.Rate                 `json:"currency_rates"`
	StockPrices     []market.Price                `json:"stock_prices"`
}

type Service struct {
	source   ledger.Source
	rates    market.RateProvider
	prices   market.PriceProvider
	settings SettingsStore
}

func New(source ledger.Source, rates market.RateProvider, prices market.PriceProvider, store SettingsStore) *Service {
	return &Service{source: source, rates: rates, prices: prices, settings: store}
}

// MainPage builds the page for the given moment. Ledger dirt is
// tolerated row by row inside the aggregations; provider failures are
// not tolerated and abort the build.
func (s *Service) MainPage(ctx context.Context, now time.Time) (Page, error) {
	records, err := s.source.Load(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("load ledger: %w", err)
	}
	prefs := s.settings.Load()

	page := Page{
		Greeting:        analytics.Greeting(now),
		Cards:           analytics.CardExpenses(records),
		TopTransactions: analytics.TransactionRating(records),
	}

	rates, err := s.rates.ExchangeRates(ctx, prefs.Currencies())
	if err != nil {
		return Page{}, fmt.Errorf("exchange rates: %w", err)
	}
	page.CurrencyRates = rates

	prices, err := s.prices.StockPrices(ctx, prefs.Stocks())
	if err != nil {
		return Page{}, fmt.Errorf("stock prices: %w", err)
	}
	page.StockPrices = prices

	return page, nil
}
