// Package market provides the remote market-data lookups: currency
// exchange rates and stock prices, each behind a narrow port so the
// dashboard assembly stays testable with fakes.
package market

import "context"

type (
	// Rate is one currency quote as returned by the rates provider.
	Rate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}

	// Price is one stock quote.
	Price struct {
		Stock string  `json:"stock"`
		Price float64 `json:"price"`
	}

	// RateProvider returns one quote per requested currency code. An
	// empty code list must yield an empty result with no remote call.
	RateProvider interface {
		ExchangeRates(ctx context.Context, codes []string) ([]Rate, error)
	}

	// PriceProvider returns one quote per requested ticker. An empty
	// ticker list must yield an empty result with no remote call.
	PriceProvider interface {
		StockPrices(ctx context.Context, tickers []string) ([]Price, error)
	}
)
