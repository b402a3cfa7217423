// Package coingecko implements the market-data provider client against the
// CoinGecko demo API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/domain"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	marketsPath    = "coins/markets"
	defaultTimeout = 10 * time.Second
	defaultOrder   = "market_cap_desc"
)

// Client fetches coin markets. APIKey is the optional demo key; when empty
// the request goes out unauthenticated. No retry happens here: retry policy
// belongs to the caller.
type Client struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	HTTP      *http.Client
}

var _ application.MarketClient = (*Client)(nil)

type marketRow struct {
	ID             string   `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	CurrentPrice   float64  `json:"current_price"`
	PriceChange24h *float64 `json:"price_change_percentage_24h"`
}

func (c *Client) FetchMarkets(ctx context.Context, q application.MarketQuery) ([]domain.CoinMarket, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("coingecko: invalid base url: %w", err)
	}
	u = u.JoinPath(marketsPath)

	vs := q.QuoteCurrency
	if vs == "" {
		vs = "usd"
	}
	order := q.Order
	if order == "" {
		order = defaultOrder
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	qs := u.Query()
	qs.Set("vs_currency", strings.ToLower(vs))
	qs.Set("order", order)
	qs.Set("per_page", strconv.Itoa(perPage))
	qs.Set("page", strconv.Itoa(page))
	qs.Set("sparkline", "false")
	qs.Set("price_change_percentage", "24h")
	if len(q.IDs) > 0 {
		qs.Set("ids", strings.Join(q.IDs, ","))
	}
	if c.APIKey != "" {
		qs.Set("x_cg_demo_api_key", c.APIKey)
	}
	u.RawQuery = qs.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.APIKey != "" {
		// The demo API accepts the key both ways; send both like the docs show.
		req.Header.Set("x-cg-demo-api-key", c.APIKey)
	}

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.HTTPStatusError{Code: resp.StatusCode}
	}

	var rows []marketRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}

	out := make([]domain.CoinMarket, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CoinMarket{
			ID:             r.ID,
			Symbol:         r.Symbol,
			Name:           r.Name,
			ImageURL:       r.Image,
			CurrentPrice:   r.CurrentPrice,
			PriceChange24h: r.PriceChange24h,
		})
	}
	return out, nil
}
