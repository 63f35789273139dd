package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var _ RatesProvider = (*ExchangeRatesAPIProvider)(nil)

// ExchangeRatesAPIProvider fetches rates from an exchangeratesapi.io compatible API
// (GET /latest?base=..&symbols=..).
type ExchangeRatesAPIProvider struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
}

// NewExchangeRatesAPIProvider creates a new ExchangeRatesAPIProvider.
func NewExchangeRatesAPIProvider(baseURL, apiKey string, timeoutSec int) *ExchangeRatesAPIProvider {
	if baseURL == "" {
		baseURL = "https://api.exchangeratesapi.io"
	}
	timeout := time.Duration(timeoutSec) * time.Second
	return &ExchangeRatesAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (p *ExchangeRatesAPIProvider) latestURL(base, quote string) string {
	q := url.Values{}
	q.Set("base", base)
	q.Set("symbols", quote)
	if p.apiKey != "" {
		q.Set("access_key", p.apiKey)
	}
	return fmt.Sprintf("%s/latest?%s", p.baseURL, q.Encode())
}

// GetRate retrieves the exchange rate between the specified base and quote currencies.
// Every failure is returned as a *FetchError.
func (p *ExchangeRatesAPIProvider) GetRate(ctx context.Context, base, quote string) (float64, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.latestURL(base, quote), http.NoBody)
	if err != nil {
		return 0, fetchErr(base, quote, fmt.Errorf("request creation failed: %w", err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fetchErr(base, quote, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fetchErr(base, quote, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body)))
	}

	var result latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fetchErr(base, quote, fmt.Errorf("failed to decode response: %w", err))
	}

	rate, ok := result.Rates[quote]
	if !ok {
		return 0, fetchErr(base, quote, ErrQuoteMissing)
	}
	if !ValidRate(rate) {
		return 0, fetchErr(base, quote, fmt.Errorf("%w: %v", ErrInvalidRate, rate))
	}

	return rate, nil
}
