package application

import (
	"context"
	"fmt"
	"time"

	"coinmarket-service/internal/domain"
)

// fakeMarketClient serves pinned fetches (IDs set) and top fetches (IDs
// empty) from canned slices and records the queries it saw.
type fakeMarketClient struct {
	pinned  []domain.CoinMarket
	top     []domain.CoinMarket
	err     error
	topErr  error
	queries []MarketQuery
}

func (f *fakeMarketClient) FetchMarkets(_ context.Context, q MarketQuery) ([]domain.CoinMarket, error) {
	f.queries = append(f.queries, q)
	if len(q.IDs) > 0 {
		if f.err != nil {
			return nil, f.err
		}
		return f.pinned, nil
	}
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.top, nil
}

type fakeRateStore struct {
	prices map[string]float64
	err    error
}

func (f *fakeRateStore) Record(_ context.Context, crypto, fiat string, price float64) error {
	if f.err != nil {
		return f.err
	}
	if f.prices == nil {
		f.prices = map[string]float64{}
	}
	f.prices[domain.PairKey(crypto, fiat)] = price
	return nil
}

func (f *fakeRateStore) Price(crypto, fiat string) (float64, bool) {
	p, ok := f.prices[domain.PairKey(crypto, fiat)]
	return p, ok
}

type fakeHistoryStore struct {
	items []domain.Conversion
	err   error
}

func (f *fakeHistoryStore) Append(_ context.Context, rec domain.Conversion) error {
	if f.err != nil {
		return f.err
	}
	f.items = append([]domain.Conversion{rec}, f.items...)
	if len(f.items) > domain.HistoryLimit {
		f.items = f.items[:domain.HistoryLimit]
	}
	return nil
}

func (f *fakeHistoryStore) List() []domain.Conversion { return f.items }

type fakeFiatSource struct {
	rates map[domain.Fiat]float64
	err   error
}

func (f *fakeFiatSource) USDRates(context.Context) (map[domain.Fiat]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("rec-%d", g.n)
}
