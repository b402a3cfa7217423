package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"coinmarket-service/internal/domain"

	"go.uber.org/zap"
)

// MarketService drives the fetch/merge cycle: pinned assets first, then the
// top-N by market cap, merged with pinned positions winning. Every refreshed
// price is pushed into the rate store so the converter works offline.
type MarketService struct {
	client MarketClient
	rates  RateStore
	log    *zap.Logger

	pinnedIDs []string
	topN      int
	quote     string

	mu          sync.RWMutex
	coins       []domain.CoinMarket
	lastFetched time.Time
}

type MarketOption func(*MarketService)

func WithPinned(ids []string) MarketOption {
	return func(s *MarketService) { s.pinnedIDs = ids }
}

func WithTopN(n int) MarketOption {
	return func(s *MarketService) { s.topN = n }
}

func WithQuoteCurrency(cur string) MarketOption {
	return func(s *MarketService) { s.quote = strings.ToLower(cur) }
}

func WithMarketLogger(log *zap.Logger) MarketOption {
	return func(s *MarketService) { s.log = log }
}

func NewMarketService(client MarketClient, rates RateStore, opts ...MarketOption) *MarketService {
	s := &MarketService{
		client:    client,
		rates:     rates,
		log:       zap.NewNop(),
		pinnedIDs: []string{"bitcoin", "ethereum", "tether"},
		topN:      10,
		quote:     "usd",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh performs one full fetch cycle. The two requests run sequentially so
// the pinned-first merge tie-break is trivially preserved. On any failure the
// previous snapshot is left untouched; stale data beats a blank screen.
func (s *MarketService) Refresh(ctx context.Context) ([]domain.CoinMarket, error) {
	var pinned []domain.CoinMarket
	if len(s.pinnedIDs) > 0 {
		var err error
		pinned, err = s.client.FetchMarkets(ctx, MarketQuery{
			QuoteCurrency: s.quote,
			IDs:           s.pinnedIDs,
			PerPage:       len(s.pinnedIDs),
			Page:          1,
		})
		if err != nil {
			s.log.Warn("pinned_fetch_failed", zap.Error(err))
			return nil, err
		}
	}

	top, err := s.client.FetchMarkets(ctx, MarketQuery{
		QuoteCurrency: s.quote,
		PerPage:       s.topN,
		Page:          1,
	})
	if err != nil {
		s.log.Warn("top_fetch_failed", zap.Error(err))
		return nil, err
	}

	merged := domain.MergeMarkets(pinned, top)
	for _, c := range merged {
		if err := s.rates.Record(ctx, c.Symbol, s.quote, c.CurrentPrice); err != nil {
			// Persistence failures leave the previous cached value in place.
			s.log.Warn("rate_persist_failed", zap.String("symbol", c.Symbol), zap.Error(err))
		}
	}

	s.mu.Lock()
	s.coins = merged
	s.lastFetched = time.Now().UTC()
	s.mu.Unlock()

	s.log.Info("markets_refreshed", zap.Int("count", len(merged)))
	return merged, nil
}

// Markets returns the current snapshot, filtered case-insensitively by name
// or symbol when query is non-empty.
func (s *MarketService) Markets(query string) []domain.CoinMarket {
	s.mu.RLock()
	coins := s.coins
	s.mu.RUnlock()

	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]domain.CoinMarket, len(coins))
		copy(out, coins)
		return out
	}

	q := strings.ToLower(query)
	out := make([]domain.CoinMarket, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *MarketService) LastFetched() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFetched
}
