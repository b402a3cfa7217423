package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"coinmarket-service/internal/domain"
)

// RateCache holds the most recently observed price per crypto/fiat pair so
// conversions keep working without network access. The full mapping is loaded
// once at construction; reads are served from memory and every write
// re-persists the whole mapping.
type RateCache struct {
	kv KeyValue

	mu     sync.RWMutex
	prices map[string]float64
}

func NewRateCache(ctx context.Context, kv KeyValue) (*RateCache, error) {
	c := &RateCache{kv: kv, prices: map[string]float64{}}
	raw, err := kv.Get(ctx, KeyRates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &c.prices); err != nil {
		// Corrupt blob: start empty rather than fail construction.
		c.prices = map[string]float64{}
	}
	return c, nil
}

// Record upserts the price for the pair and persists the updated mapping.
func (c *RateCache) Record(ctx context.Context, crypto, fiat string, price float64) error {
	c.mu.Lock()
	c.prices[domain.PairKey(crypto, fiat)] = price
	raw, err := json.Marshal(c.prices)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, KeyRates, raw)
}

// Price returns the cached price for the pair. A missing pair is reported via
// ok=false, never as an error.
func (c *RateCache) Price(crypto, fiat string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.prices[domain.PairKey(crypto, fiat)]
	return p, ok
}

// Len reports the number of cached pairs.
func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.prices)
}
