package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrBadPrice reports a quote whose price field was not numeric text.
// Unlike dirty ledger rows this is never skipped: a provider returning
// garbage means no partial result should reach the caller.
var ErrBadPrice = errors.New("stock price is not numeric")

// StockClient fetches stock quotes one ticker at a time. The provider
// nests the textual price under "Global Quote" / "05. price".
type StockClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

var _ PriceProvider = (*StockClient)(nil)

func NewStockClient(baseURL, apiKey string) *StockClient {
	return &StockClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// StockPrices returns one quote per ticker, in the given order. No
// request is issued for an empty list; any single failure aborts the
// whole lookup.
func (c *StockClient) StockPrices(ctx context.Context, tickers []string) ([]Price, error) {
	out := make([]Price, 0, len(tickers))
	for _, ticker := range tickers {
		price, err := c.quote(ctx, ticker)
		if err != nil {
			return nil, err
		}
		out = append(out, Price{Stock: ticker, Price: price})
	}
	return out, nil
}

func (c *StockClient) quote(ctx context.Context, ticker string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build quote request: %w", err)
	}
	q := req.URL.Query()
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", ticker)
	q.Set("apikey", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request quote %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("quote %s: unexpected status %s", ticker, resp.Status)
	}

	var payload struct {
		GlobalQuote struct {
			Price string `json:"05. price"`
		} `json:"Global Quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode quote %s: %w", ticker, err)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(payload.GlobalQuote.Price), 64)
	if err != nil {
		return 0, fmt.Errorf("quote %s: %w: %q", ticker, ErrBadPrice, payload.GlobalQuote.Price)
	}
	return price, nil
}
