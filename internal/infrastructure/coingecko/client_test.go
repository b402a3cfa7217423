package coingecko_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/infrastructure/coingecko"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClient(rt rtFunc) *http.Client {
	return &http.Client{Timeout: 2 * time.Second, Transport: rt}
}

const sampleMarkets = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":65000,"price_change_percentage_24h":1.25},
  {"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3100.5,"price_change_percentage_24h":-0.4},
  {"id":"tether","symbol":"usdt","name":"Tether","current_price":1.0}
]`

func TestFetchMarkets_MapsRows(t *testing.T) {
	t.Parallel()
	c := &coingecko.Client{
		BaseURL: "https://api.coingecko.com/api/v3",
		HTTP: httpClient(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(sampleMarkets)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}

	got, err := c.FetchMarkets(context.Background(), application.MarketQuery{QuoteCurrency: "usd"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "bitcoin", got[0].ID)
	require.Equal(t, "btc", got[0].Symbol)
	require.Equal(t, "https://img/btc.png", got[0].ImageURL)
	require.InDelta(t, 65000, got[0].CurrentPrice, 1e-9)
	require.NotNil(t, got[0].PriceChange24h)
	require.InDelta(t, 1.25, *got[0].PriceChange24h, 1e-9)
	// 24h change is optional on the wire.
	require.Nil(t, got[2].PriceChange24h)
}

func TestFetchMarkets_QueryParams(t *testing.T) {
	t.Parallel()
	var seen *http.Request
	c := &coingecko.Client{
		BaseURL: "https://api.coingecko.com/api/v3",
		APIKey:  "demo-key",
		HTTP: httpClient(func(r *http.Request) (*http.Response, error) {
			seen = r
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader("[]")),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}

	_, err := c.FetchMarkets(context.Background(), application.MarketQuery{
		QuoteCurrency: "USD",
		IDs:           []string{"bitcoin", "ethereum", "tether"},
		PerPage:       3,
		Page:          1,
	})
	require.NoError(t, err)
	require.NotNil(t, seen)

	q := seen.URL.Query()
	require.Equal(t, "/api/v3/coins/markets", seen.URL.Path)
	require.Equal(t, "usd", q.Get("vs_currency"))
	require.Equal(t, "market_cap_desc", q.Get("order"))
	require.Equal(t, "3", q.Get("per_page"))
	require.Equal(t, "1", q.Get("page"))
	require.Equal(t, "false", q.Get("sparkline"))
	require.Equal(t, "24h", q.Get("price_change_percentage"))
	require.Equal(t, "bitcoin,ethereum,tether", q.Get("ids"))
	require.Equal(t, "demo-key", q.Get("x_cg_demo_api_key"))
	require.Equal(t, "demo-key", seen.Header.Get("x-cg-demo-api-key"))
}

func TestFetchMarkets_NoKeyMeansUnauthenticated(t *testing.T) {
	t.Parallel()
	var seen *http.Request
	c := &coingecko.Client{
		HTTP: httpClient(func(r *http.Request) (*http.Response, error) {
			seen = r
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader("[]")),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}

	_, err := c.FetchMarkets(context.Background(), application.MarketQuery{})
	require.NoError(t, err)
	require.Empty(t, seen.URL.Query().Get("x_cg_demo_api_key"))
	require.Empty(t, seen.Header.Get("x-cg-demo-api-key"))
}

func TestFetchMarkets_HTTPStatusError(t *testing.T) {
	t.Parallel()
	var calls int
	c := &coingecko.Client{
		HTTP: httpClient(func(r *http.Request) (*http.Response, error) {
			calls++
			return &http.Response{
				StatusCode: 429,
				Body:       io.NopCloser(strings.NewReader("rate limited")),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}

	_, err := c.FetchMarkets(context.Background(), application.MarketQuery{})
	require.Error(t, err)

	var se *domain.HTTPStatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 429, se.Code)
	// The client never retries on its own.
	require.Equal(t, 1, calls)
}

func TestFetchMarkets_NetworkError(t *testing.T) {
	t.Parallel()
	c := &coingecko.Client{
		HTTP: httpClient(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}

	_, err := c.FetchMarkets(context.Background(), application.MarketQuery{})
	require.Error(t, err)

	var ne *domain.NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestFetchMarkets_InvalidResponse(t *testing.T) {
	t.Parallel()
	c := &coingecko.Client{
		HTTP: httpClient(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(`{"not":"a list"}`)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}

	_, err := c.FetchMarkets(context.Background(), application.MarketQuery{})
	require.ErrorIs(t, err, domain.ErrInvalidResponse)
}
