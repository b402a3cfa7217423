package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"coinmarket-service/internal/domain"
)

// History is the bounded recent-conversion log: newest first, at most
// domain.HistoryLimit entries, persisted whole on every append.
type History struct {
	kv KeyValue

	mu    sync.RWMutex
	items []domain.Conversion
}

func NewHistory(ctx context.Context, kv KeyValue) (*History, error) {
	h := &History{kv: kv}
	raw, err := kv.Get(ctx, KeyHistory)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &h.items); err != nil {
		h.items = nil
	}
	if len(h.items) > domain.HistoryLimit {
		h.items = h.items[:domain.HistoryLimit]
	}
	return h, nil
}

// Append inserts rec at the front, truncates to the limit and persists the
// truncated list.
func (h *History) Append(ctx context.Context, rec domain.Conversion) error {
	h.mu.Lock()
	h.items = append([]domain.Conversion{rec}, h.items...)
	if len(h.items) > domain.HistoryLimit {
		h.items = h.items[:domain.HistoryLimit]
	}
	raw, err := json.Marshal(h.items)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	return h.kv.Set(ctx, KeyHistory, raw)
}

// List returns the entries newest first.
func (h *History) List() []domain.Conversion {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Conversion, len(h.items))
	copy(out, h.items)
	return out
}
