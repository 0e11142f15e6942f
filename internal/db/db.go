// Package db provides read-only PostgreSQL access to the employee and team
// schema used for team generation.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool. Every operation is a single
// read-only query; connections are acquired from the pool per call and
// released when the query finishes, on every exit path.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// QueryError is a repository-level failure carrying the underlying database
// error. Empty result sets are a normal outcome and never produce one.
type QueryError struct {
	Operation string
	Cause     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Operation, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
