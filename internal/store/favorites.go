package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"coinmarket-service/internal/domain"
)

// Favorites is a persisted set of entry IDs for one content domain (coins,
// education, glossary, featured articles). Toggling twice restores the
// original state; iteration order carries no meaning.
type Favorites struct {
	kv  KeyValue
	key string

	mu  sync.RWMutex
	ids map[string]bool
}

func NewFavorites(ctx context.Context, kv KeyValue, key string) (*Favorites, error) {
	f := &Favorites{kv: kv, key: key, ids: map[string]bool{}}
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return f, nil
		}
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, id := range list {
			f.ids[id] = true
		}
	}
	return f, nil
}

func (f *Favorites) IsFavorite(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ids[id]
}

// Toggle flips membership for id, persists the full resulting set and reports
// the new state.
func (f *Favorites) Toggle(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	if f.ids[id] {
		delete(f.ids, id)
	} else {
		f.ids[id] = true
	}
	fav := f.ids[id]
	raw, err := json.Marshal(f.sortedLocked())
	f.mu.Unlock()
	if err != nil {
		return fav, err
	}
	return fav, f.kv.Set(ctx, f.key, raw)
}

// IDs returns the current membership. Sorted only so output is stable.
func (f *Favorites) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sortedLocked()
}

func (f *Favorites) sortedLocked() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
