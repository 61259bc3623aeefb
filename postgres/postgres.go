// Package postgres provides PostgreSQL-based storage for saved listings
// using the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB represents a PostgreSQL connection pool.
type DB struct {
	db  *sql.DB
	dsn string
}

// NewDB creates a new DB for the given connection string.
func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Open connects to the database and creates the schema if needed.
func (db *DB) Open(ctx context.Context) error {
	conn, err := sql.Open("pgx", db.dsn)
	if err != nil {
		return fmt.Errorf("open postgres connection: %w", err)
	}

	conn.SetConnMaxLifetime(5 * time.Minute)
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}

	db.db = conn

	if err := db.createSchema(ctx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

func (db *DB) createSchema(ctx context.Context) error {
	_, err := db.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			fields JSONB NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			fetched_at TIMESTAMPTZ NOT NULL,
			seq BIGSERIAL
		);

		CREATE INDEX IF NOT EXISTS idx_listings_url ON listings(url);
		CREATE INDEX IF NOT EXISTS idx_listings_fetched_at ON listings(fetched_at DESC);
	`)
	return err
}
