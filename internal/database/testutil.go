package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/slack-duty-bot/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// Create in-memory SQLite database
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to create test database")

	db, err := setup(sqlDB)
	require.NoError(t, err, "Failed to configure test database")

	// Run migrations to create tables
	err = sqlite.Migrate(db.DB())
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() { db.Close() })

	return db
}
