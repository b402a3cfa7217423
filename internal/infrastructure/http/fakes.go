package httpserver

import (
	"context"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/content"
	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/infrastructure/memkv"
	"coinmarket-service/internal/store"
)

var _ application.MarketClient = (*fakeMarketClient)(nil)

// fakeMarketClient serves canned rows: the pinned subset when IDs are given,
// a small top list otherwise.
type fakeMarketClient struct {
	err error
}

func fptr(v float64) *float64 { return &v }

func (f *fakeMarketClient) FetchMarkets(_ context.Context, q application.MarketQuery) ([]domain.CoinMarket, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(q.IDs) > 0 {
		return []domain.CoinMarket{
			{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 65000, PriceChange24h: fptr(1.2)},
			{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3200, PriceChange24h: fptr(-0.4)},
			{ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1},
		}, nil
	}
	return []domain.CoinMarket{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 65000, PriceChange24h: fptr(1.2)},
		{ID: "solana", Symbol: "sol", Name: "Solana", CurrentPrice: 150, PriceChange24h: fptr(3.1)},
	}, nil
}

// NewInMemoryDeps wires a full handler dependency set over the in-process
// backend and the fake provider.
func NewInMemoryDeps(client application.MarketClient) (Deps, error) {
	ctx := context.Background()
	kv := memkv.New()

	ratecache, err := store.NewRateCache(ctx, kv)
	if err != nil {
		return Deps{}, err
	}
	history, err := store.NewHistory(ctx, kv)
	if err != nil {
		return Deps{}, err
	}
	favorites := map[string]application.FavoriteStore{}
	for dom, key := range map[string]string{
		"coins":     store.KeyCoinFavorites,
		"education": store.KeyEducationFavs,
		"glossary":  store.KeyGlossaryFavs,
		"featured":  store.KeyFeaturedFavs,
	} {
		f, err := store.NewFavorites(ctx, kv, key)
		if err != nil {
			return Deps{}, err
		}
		favorites[dom] = f
	}
	catalog, err := content.Load()
	if err != nil {
		return Deps{}, err
	}

	markets := application.NewMarketService(client, ratecache)
	converter := application.NewConverter(ratecache, history, application.NewFiatTable())

	return Deps{
		Markets:   markets,
		Converter: converter,
		Rates:     ratecache,
		Catalog:   catalog,
		Favorites: favorites,
		Ping:      kv.Ping,
	}, nil
}
