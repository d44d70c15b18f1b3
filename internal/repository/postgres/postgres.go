package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rupeerewind/backend/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS client_preferences (
		client_id  TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (client_id, key)
	);

	CREATE TABLE IF NOT EXISTS calculation_logs (
		id         UUID PRIMARY KEY,
		mode       TEXT NOT NULL,
		request    JSONB NOT NULL,
		result     JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
`

// PostgresRepository implements domain.DataRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the tables if they do not exist yet
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}

// GetPreference reads one preference value for a client
func (r *PostgresRepository) GetPreference(ctx context.Context, clientID, key string) (string, bool, error) {
	query := `SELECT value FROM client_preferences WHERE client_id = $1 AND key = $2`

	var value string
	err := r.pool.QueryRow(ctx, query, clientID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres: failed to get preference: %w", err)
	}

	return value, true, nil
}

// SetPreference upserts one preference value for a client
func (r *PostgresRepository) SetPreference(ctx context.Context, clientID, key, value string) error {
	query := `
		INSERT INTO client_preferences (client_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (client_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, clientID, key, value); err != nil {
		return fmt.Errorf("postgres: failed to set preference: %w", err)
	}

	return nil
}

// SaveCalculationLog persists a calculation request/result to PostgreSQL
func (r *PostgresRepository) SaveCalculationLog(ctx context.Context, entry domain.CalculationLog) error {
	query := `
		INSERT INTO calculation_logs (id, mode, request, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Mode, string(entry.Request), string(entry.Result), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save calculation log: %w", err)
	}

	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
