package test

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"bnghex/internal/infrastructure/database"
	repoimpl "bnghex/internal/repository"
)

// setupTestEnvironment loads .env from the repository root so integration
// tests can run outside the container.
func setupTestEnvironment() error {
	// ignore the error, CI sets the variables directly
	_ = godotenv.Load("../.env")
	return nil
}

// databaseConfigured reports whether the Postgres integration environment
// is available.
func databaseConfigured() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// setupTestCellsRepository connects to Postgres with retries, ensures the
// dataset schema, and returns the repository plus a cleanup func.
func setupTestCellsRepository() (*repoimpl.PostgresCellsRepository, func(), error) {
	if err := setupTestEnvironment(); err != nil {
		return nil, nil, err
	}

	postgresClient, err := database.NewPostgreSQLClientWithRetry(5, 1*time.Second)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		postgresClient.Close()
	}

	return repoimpl.NewPostgresCellsRepository(postgresClient), cleanup, nil
}
