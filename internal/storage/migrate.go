package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/mercerclayton/banking-system/internal/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationStatus reports the schema version before and after Migrate.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate creates the card table when it is missing. Running it against an up to date
// database is a no-op.
func Migrate(env config.DatabaseConfig) (*MigrationStatus, error) {
	// The migrate sqlite driver closes the database it is given, so it gets its own handle.
	db, err := sql.Open(driverName, dataSourceName(env))
	if err != nil {
		return nil, fmt.Errorf("migrate: open: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: sqlite.WithInstance: %w", err)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("migrate: iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()
		return nil, fmt.Errorf("migrate: NewWithInstance: %w", err)
	}
	defer m.Close()

	status := &MigrationStatus{}

	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("migrate: pre-migration version: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("migrate: up: %w", err)
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return nil, fmt.Errorf("migrate: post-migration version: %w", err)
	}

	return status, nil
}
