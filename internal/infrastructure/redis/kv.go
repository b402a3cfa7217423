package redisstore

import (
	"context"
	"errors"

	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/store"

	"github.com/redis/go-redis/v9"
)

// KV is the Redis-backed KeyValueStore. Blobs are stored without TTL; a
// newer write simply replaces the previous one.
type KV struct {
	Client *redis.Client
}

var _ store.KeyValue = (*KV)(nil)

func NewKV(client *redis.Client) *KV {
	return &KV{Client: client}
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	return v, err
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, key, value, 0).Err()
}

func (s *KV) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
