package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ExchangeClient fetches currency quotes from the exchange-rates API.
// The API key travels in the apikey header; the requested codes in a
// single comma-separated symbols parameter, so one call covers the
// whole preference list.
type ExchangeClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

var _ RateProvider = (*ExchangeClient)(nil)

func NewExchangeClient(baseURL, apiKey string) *ExchangeClient {
	return &ExchangeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// ExchangeRates returns the provider's quotes for the given codes in
// provider order, unmodified. No request is issued for an empty list.
func (c *ExchangeClient) ExchangeRates(ctx context.Context, codes []string) ([]Rate, error) {
	if len(codes) == 0 {
		return []Rate{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	q := req.URL.Query()
	q.Set("symbols", strings.Join(codes, ","))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rates: unexpected status %s", resp.Status)
	}

	var rates []Rate
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}
	return rates, nil
}
