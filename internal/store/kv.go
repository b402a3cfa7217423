package store

import "context"

// Storage keys. The persisted layout mirrors what earlier builds shipped, so
// an existing blob loads unchanged.
const (
	KeyRates         = "rates.cache.v1"
	KeyCoinFavorites = "favorites.coin.ids"
	KeyHistory       = "calc.history.v1"
	KeyEducationFavs = "education.favorites"
	KeyGlossaryFavs  = "glossary.favorites"
	KeyFeaturedFavs  = "featured.articles.favorites"
)

// KeyValue is the persistence contract the stores are built on: a durable
// mapping from string key to a serialized blob. Get returns domain.ErrNotFound
// for an absent key; absence is not a failure.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
