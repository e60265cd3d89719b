package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a PostgreSQL connection.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Connect opens a PostgreSQL pool and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// RunMigrations creates the schema. The dependent tables carry plain foreign
// keys with no ON DELETE CASCADE: removal of dependents is orchestrated
// explicitly so the cascade contract stays auditable regardless of how the
// store is configured.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			surname VARCHAR(100) NOT NULL,
			personal_number VARCHAR(50) NOT NULL,
			username VARCHAR(100) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS hires (
			id BIGSERIAL PRIMARY KEY,
			client_id BIGINT NOT NULL REFERENCES users(id),
			worker_id BIGINT NOT NULL REFERENCES users(id),
			date TIMESTAMPTZ NOT NULL,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			idempotency_key VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category_id BIGINT NOT NULL REFERENCES categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS worker_profiles (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			city VARCHAR(100) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			years_experience INT NOT NULL DEFAULT 0,
			profile_photo VARCHAR(255) NOT NULL DEFAULT '/uploads/profile-photos/default.jpg'
		)`,
		`CREATE TABLE IF NOT EXISTS worker_services (
			worker_profile_id BIGINT NOT NULL REFERENCES worker_profiles(id),
			service_id BIGINT NOT NULL REFERENCES services(id),
			PRIMARY KEY (worker_profile_id, service_id)
		)`,
		`CREATE TABLE IF NOT EXISTS worker_photos (
			id BIGSERIAL PRIMARY KEY,
			worker_profile_id BIGINT NOT NULL REFERENCES worker_profiles(id),
			image_url VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hires_client_id ON hires(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_hires_worker_id ON hires(worker_id)`,
		`CREATE INDEX IF NOT EXISTS idx_hires_status ON hires(status)`,
		`CREATE INDEX IF NOT EXISTS idx_hires_date ON hires(date)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_hires_idempotency_key ON hires(idempotency_key) WHERE idempotency_key IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_worker_profiles_user_id ON worker_profiles(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_worker_photos_profile_id ON worker_photos(worker_profile_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
