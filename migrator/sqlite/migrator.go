package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the roster, rotation state and stats schema.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the pending schema migrations.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate duty schema: %w", err)
	}
	return nil
}
