package application

import (
	"context"
	"sync"

	"coinmarket-service/internal/domain"
)

// FiatTable holds the USD→fiat conversion factors. It is seeded with the
// static defaults and may be overwritten by a live feed; only the enumerated
// fiats are ever updated.
type FiatTable struct {
	mu    sync.RWMutex
	rates map[domain.Fiat]float64
}

func NewFiatTable() *FiatTable {
	rates := make(map[domain.Fiat]float64, len(domain.DefaultUSDRates))
	for f, r := range domain.DefaultUSDRates {
		rates[f] = r
	}
	return &FiatTable{rates: rates}
}

func (t *FiatTable) Rate(f domain.Fiat) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.rates[f]
	return r, ok
}

// Refresh pulls current factors from src. A failed fetch leaves the table
// unchanged; unknown fiats in the response are ignored, and a zero or
// negative factor never replaces a usable one.
func (t *FiatTable) Refresh(ctx context.Context, src FiatSource) error {
	fresh, err := src.USDRates(ctx)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for f := range t.rates {
		if r, ok := fresh[f]; ok && r > 0 {
			t.rates[f] = r
		}
	}
	return nil
}

func (t *FiatTable) Snapshot() map[domain.Fiat]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[domain.Fiat]float64, len(t.rates))
	for f, r := range t.rates {
		out[f] = r
	}
	return out
}
