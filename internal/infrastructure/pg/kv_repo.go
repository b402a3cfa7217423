package pg

import (
	"context"
	"errors"

	"coinmarket-service/internal/domain"
	"coinmarket-service/internal/store"

	"github.com/jackc/pgx/v5"
)

// KVRepo is the Postgres-backed KeyValueStore: one row per key, whole blob
// replaced on every write.
type KVRepo struct{ db *DB }

var _ store.KeyValue = (*KVRepo)(nil)

func NewKVRepo(db *DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key=$1`
	var out []byte
	if err := r.db.Pool.QueryRow(ctx, q, key).Scan(&out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	const up = `
        INSERT INTO kv_store(key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
          SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err := r.db.Pool.Exec(ctx, up, key, value)
	return err
}

func (r *KVRepo) Ping(ctx context.Context) error { return r.db.Ping(ctx) }
