package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// PostgresStore persists the state as a JSONB document in the saves table,
// one row per save key.
type PostgresStore struct {
	pool    *pgxpool.Pool
	saveKey string
}

// NewPostgresStore creates a Postgres-backed store writing under saveKey.
func NewPostgresStore(pool *pgxpool.Pool, saveKey string) *PostgresStore {
	return &PostgresStore{pool: pool, saveKey: saveKey}
}

// Load reads and merges the persisted row. No row yields the default state; a
// corrupt payload is logged and also yields the default state.
func (s *PostgresStore) Load(ctx context.Context) (domain.PlayerState, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM saves WHERE save_key = $1`, s.saveKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return registry.DefaultState(), nil
		}
		return registry.DefaultState(), fmt.Errorf("failed to query save: %w", err)
	}

	state, err := mergeWithDefaults(raw)
	if err != nil {
		logger.FromContext(ctx).Warn("Persisted save is corrupt, starting fresh", "save_key", s.saveKey, "error", err)
		return registry.DefaultState(), nil
	}
	return state, nil
}

// Save upserts the full state.
func (s *PostgresStore) Save(ctx context.Context, state domain.PlayerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO saves (save_key, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (save_key)
		 DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.saveKey, raw)
	if err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}
	return nil
}

// Close releases the underlying pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
