package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// PostgresStore range le blob dans une table clé/valeur app_state. Le schéma
// reste opaque : une ligne par clé, le snapshot entier en jsonb.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.Marshal(envelope{Version: envelopeVersion, Snapshot: snap})
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO app_state (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, StateKey, data)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

func (p *PostgresStore) Load(ctx context.Context) (*model.Snapshot, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `
		SELECT data FROM app_state WHERE key = $1
	`, StateKey).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query state: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &env.Snapshot, nil
}

func (p *PostgresStore) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, StateKey); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}
