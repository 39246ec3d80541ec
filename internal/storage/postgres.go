package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/models"
)

// PostgresStore persists conversations and itineraries as jsonb rows.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects the pool and ensures the schema exists.
func NewPostgresStore(ctx context.Context, dbCfg *config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dbCfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	// Simple protocol is required when connecting through PgBouncer.
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "travelmate-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", dbCfg.QueryTimeout.Milliseconds())
	poolCfg.MaxConns = dbCfg.MaxConns
	poolCfg.MinConns = dbCfg.MinConns
	poolCfg.MaxConnLifetime = dbCfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS conversations (
			id TEXT PRIMARY KEY,
			messages JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS itineraries (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *PostgresStore) SaveConversation(ctx context.Context, messages []models.ChatMessage) (string, error) {
	id := uuid.NewString()
	return id, s.PutConversation(ctx, id, messages)
}

func (s *PostgresStore) PutConversation(ctx context.Context, id string, messages []models.ChatMessage) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO conversations (id, messages, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET messages = EXCLUDED.messages, updated_at = EXCLUDED.updated_at`,
		id, payload, time.Now())
	return err
}

func (s *PostgresStore) GetConversation(ctx context.Context, id string) ([]models.ChatMessage, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		"SELECT messages FROM conversations WHERE id = $1", id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *PostgresStore) SaveItinerary(ctx context.Context, itin models.Itinerary) error {
	payload, err := json.Marshal(itin)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO itineraries (id, data, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		itin.ID, payload, time.Now())
	return err
}

func (s *PostgresStore) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		"SELECT data FROM itineraries WHERE id = $1", id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var itin models.Itinerary
	if err := json.Unmarshal(payload, &itin); err != nil {
		return nil, err
	}
	return &itin, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
