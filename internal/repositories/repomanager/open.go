package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Open connects to the store identified by driver and dsn, applies pending
// migrations, and returns the handle together with the matching repository
// manager. The caller owns closing the returned *sql.DB.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var m RepositoryManager
	switch driver {
	case DriverPostgres, "postgres":
		driver = DriverPostgres
		m = &PostgresRepositoryManager{}
	case DriverSQLite, "sqlite3":
		driver = DriverSQLite
		m = &SQLiteRepositoryManager{}
	default:
		return nil, nil, fmt.Errorf("unknown database driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, m, nil
}
