package fiatfeed_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/infrastructure/fiatfeed"
	"coinmarket-service/internal/infrastructure/httpx"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func httpClient(resBody string, code int) *httpx.Client {
	return &httpx.Client{
		HTTP: &http.Client{
			Timeout: 2 * time.Second,
			Transport: roundTripFunc(func(r *http.Request) *http.Response {
				return &http.Response{
					StatusCode: code,
					Body:       io.NopCloser(strings.NewReader(resBody)),
					Header:     make(http.Header),
				}
			}),
		},
	}
}

const sampleOK = `{
  "success": true,
  "base": "EUR",
  "date": "2025-06-01",
  "rates": { "USD": 1.20, "EUR": 1.0, "RUB": 108.0 }
}`

func TestUSDRates_RebasesToUSD(t *testing.T) {
	p := &fiatfeed.ExchangeRatesAPI{
		BaseURL: "https://api.exchangeratesapi.io",
		APIKey:  "test",
		Client:  httpClient(sampleOK, 200),
	}
	rates, err := p.USDRates(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 1.0, rates[domain.FiatUSD], 1e-9)
	require.InDelta(t, 0.8333, rates[domain.FiatEUR], 0.0001)
	require.InDelta(t, 90.0, rates[domain.FiatRUB], 1e-9)
}

func TestUSDRates_APIError(t *testing.T) {
	body := `{"success": false, "error": {"code": 104, "info": "quota exceeded"}}`
	p := &fiatfeed.ExchangeRatesAPI{
		BaseURL: "https://api.exchangeratesapi.io",
		APIKey:  "bad",
		Client:  httpClient(body, 200),
	}
	_, err := p.USDRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestUSDRates_MissingConfiguration(t *testing.T) {
	p := &fiatfeed.ExchangeRatesAPI{}
	_, err := p.USDRates(context.Background())
	require.Error(t, err)
}

func TestUSDRates_MissingUSDRate(t *testing.T) {
	body := `{"success": true, "base": "EUR", "rates": {"EUR": 1.0}}`
	p := &fiatfeed.ExchangeRatesAPI{
		BaseURL: "https://api.exchangeratesapi.io",
		APIKey:  "test",
		Client:  httpClient(body, 200),
	}
	_, err := p.USDRates(context.Background())
	require.Error(t, err)
}
