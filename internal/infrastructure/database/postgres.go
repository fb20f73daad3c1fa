package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient wraps a direct PostgreSQL connection.
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient connects using the DATABASE_URL environment variable.
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("initializing PostgreSQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{DB: db}, nil
}

// NewPostgreSQLClientWithRetry retries the connection a fixed number of
// times with a fixed interval, for environments where the database comes up
// after the service.
func NewPostgreSQLClientWithRetry(maxAttempts int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err := NewPostgreSQLClient()
		if err == nil {
			return client, nil
		}
		lastErr = err
		if attempt < maxAttempts {
			time.Sleep(interval)
		}
	}
	return nil, fmt.Errorf("connecting to PostgreSQL after %d attempts: %w", maxAttempts, lastErr)
}

// Close closes the database connection.
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database.
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQL client is not initialized")
	}
	return pc.DB.Ping()
}
