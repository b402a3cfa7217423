package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/config"
	"coinmarket-service/internal/content"
	"coinmarket-service/internal/infrastructure/coingecko"
	"coinmarket-service/internal/infrastructure/fiatfeed"
	httpserver "coinmarket-service/internal/infrastructure/http"
	"coinmarket-service/internal/infrastructure/httpx"
	"coinmarket-service/internal/infrastructure/logx"
	"coinmarket-service/internal/infrastructure/memkv"
	"coinmarket-service/internal/infrastructure/pg"
	redisstore "coinmarket-service/internal/infrastructure/redis"
	"coinmarket-service/internal/infrastructure/worker"
	"coinmarket-service/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Stores groups everything built on top of the KeyValue backend.
type Stores struct {
	KV        store.KeyValue
	Rates     *store.RateCache
	History   *store.History
	Favorites map[string]application.FavoriteStore
}

// BuildKV selects the KeyValue backend from STORAGE: mem, redis or pg.
func BuildKV(ctx context.Context, cfg config.Config) (store.KeyValue, func(), error) {
	log := logx.L()

	switch cfg.Storage {
	case "mem":
		return memkv.New(), func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup := func() { _ = client.Close() }
		return redisstore.NewKV(client), cleanup, nil

	case "pg":
		if cfg.DatabaseURL == "" {
			return nil, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		if err := pg.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return pg.NewKVRepo(db), cleanup, nil

	default:
		return nil, func() {}, fmt.Errorf("unsupported STORAGE=%q", cfg.Storage)
	}
}

// BuildStores loads the persisted state on top of kv.
func BuildStores(ctx context.Context, kv store.KeyValue) (Stores, error) {
	rates, err := store.NewRateCache(ctx, kv)
	if err != nil {
		return Stores{}, fmt.Errorf("rate cache: %w", err)
	}
	history, err := store.NewHistory(ctx, kv)
	if err != nil {
		return Stores{}, fmt.Errorf("history: %w", err)
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
			return Stores{}, fmt.Errorf("favorites %s: %w", dom, err)
		}
		favorites[dom] = f
	}
	return Stores{KV: kv, Rates: rates, History: history, Favorites: favorites}, nil
}

// BuildMarketClient configures the market data provider. An empty API key
// means unauthenticated calls, which the demo tier allows.
func BuildMarketClient(cfg config.Config) *coingecko.Client {
	return &coingecko.Client{
		BaseURL: cfg.CoinGeckoBaseURL,
		APIKey:  cfg.CoinGeckoAPIKey,
	}
}

func BuildMarketService(cfg config.Config, client application.MarketClient, rates application.RateStore) *application.MarketService {
	return application.NewMarketService(client, rates,
		application.WithPinned(cfg.PinnedIDs),
		application.WithTopN(cfg.TopCoins),
		application.WithQuoteCurrency(cfg.QuoteCurrency),
		application.WithMarketLogger(logx.L()),
	)
}

// BuildFiatSource returns the live USD rate feed, or nil when no key is
// configured and the static defaults stand.
func BuildFiatSource(cfg config.Config) application.FiatSource {
	if cfg.FiatFeedKey == "" {
		return nil
	}
	return &fiatfeed.ExchangeRatesAPI{
		BaseURL: cfg.FiatFeedBase,
		APIKey:  cfg.FiatFeedKey,
		Client:  &httpx.Client{HTTP: &http.Client{Timeout: 4 * time.Second}},
	}
}

// BuildPoller wires the periodic refresh cycle: market fetch plus an optional
// fiat table update.
func BuildPoller(cfg config.Config, markets *application.MarketService, fiat *application.FiatTable, src application.FiatSource) *worker.Poller {
	log := logx.L()
	task := worker.RefreshFunc(func(ctx context.Context) error {
		if src != nil {
			if err := fiat.Refresh(ctx, src); err != nil {
				log.Warn("fiat_refresh_failed", zap.Error(err))
			}
		}
		_, err := markets.Refresh(ctx)
		return err
	})
	return &worker.Poller{Target: task, Interval: cfg.PollInterval, Log: log}
}

// BuildServer assembles the HTTP handler dependency set.
func BuildServer(cfg config.Config, stores Stores, markets *application.MarketService, converter *application.Converter) (*httpserver.Server, error) {
	catalog, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("content catalog: %w", err)
	}
	return httpserver.NewServer(httpserver.Deps{
		Markets:   markets,
		Converter: converter,
		Rates:     stores.Rates,
		Catalog:   catalog,
		Favorites: stores.Favorites,
		Ping:      stores.KV.Ping,
	}), nil
}
