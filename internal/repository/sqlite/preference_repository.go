package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/weathercard/backend/internal/domain"
)

// PreferenceRepository implements domain.PreferenceStore with SQLite
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository opens (or creates) the SQLite file at dbPath
func NewPreferenceRepository(dbPath string) (*PreferenceRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PreferenceRepository{db: db}, nil
}

// GetPreference retrieves a preference value
func (r *PreferenceRepository) GetPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query preference: %w", err)
	}

	return value, nil
}

// SavePreference upserts a preference value
func (r *PreferenceRepository) SavePreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}

// Health checks the database connection
func (r *PreferenceRepository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: health check failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *PreferenceRepository) Close() error {
	return r.db.Close()
}
