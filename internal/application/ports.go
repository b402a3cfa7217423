package application

import (
	"context"
	"time"

	"coinmarket-service/internal/domain"
)

// MarketQuery describes one provider fetch. An empty IDs list asks for the
// top PerPage assets ranked by Order; a non-empty list constrains the result
// to exactly those assets.
type MarketQuery struct {
	QuoteCurrency string
	IDs           []string
	PerPage       int
	Page          int
	Order         string
}

type MarketClient interface {
	FetchMarkets(ctx context.Context, q MarketQuery) ([]domain.CoinMarket, error)
}

type RateStore interface {
	Record(ctx context.Context, crypto, fiat string, price float64) error
	Price(crypto, fiat string) (float64, bool)
}

type HistoryStore interface {
	Append(ctx context.Context, rec domain.Conversion) error
	List() []domain.Conversion
}

type FavoriteStore interface {
	IsFavorite(id string) bool
	Toggle(ctx context.Context, id string) (bool, error)
	IDs() []string
}

// FiatSource supplies live USD→fiat factors for the enumerated fiats.
type FiatSource interface {
	USDRates(ctx context.Context) (map[domain.Fiat]float64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGen interface {
	NewID() string
}
