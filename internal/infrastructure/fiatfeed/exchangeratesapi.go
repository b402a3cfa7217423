// Package fiatfeed sources live USD→fiat factors from an
// exchangeratesapi.io-style feed. The feed is optional: when unconfigured
// the converter keeps using the static fallback table.
package fiatfeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/infrastructure/httpx"
)

const latestPath = "/v1/latest"

type ExchangeRatesAPI struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.FiatSource = (*ExchangeRatesAPI)(nil)

type latestResp struct {
	Success bool               `json:"success"`
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// USDRates fetches the latest quotes and re-bases them to USD (the free tier
// only serves EUR-based rates).
func (p *ExchangeRatesAPI) USDRates(ctx context.Context) (map[domain.Fiat]float64, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return nil, errors.New("fiatfeed: missing configuration")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fiatfeed: invalid base url: %w", err)
	}
	u.Path = latestPath
	q := u.Query()
	q.Set("access_key", p.APIKey)
	symbols := make([]string, 0, len(domain.Fiats))
	for _, f := range domain.Fiats {
		symbols = append(symbols, string(f))
	}
	q.Set("symbols", strings.Join(symbols, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fiatfeed: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body latestResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return nil, fmt.Errorf("fiatfeed: %w", err)
	}
	if !body.Success {
		if body.Error != nil {
			return nil, fmt.Errorf("fiatfeed: %d %s", body.Error.Code, body.Error.Info)
		}
		return nil, errors.New("fiatfeed: unsuccessful response")
	}

	baseToUSD, ok := body.Rates[string(domain.FiatUSD)]
	if !ok || baseToUSD == 0 {
		return nil, errors.New("fiatfeed: missing USD rate")
	}

	out := make(map[domain.Fiat]float64, len(domain.Fiats))
	for _, f := range domain.Fiats {
		if r, ok := body.Rates[string(f)]; ok {
			out[f] = r / baseToUSD
		}
	}
	return out, nil
}
