package database

import (
	"embed"
	"errors"
	"fmt"

	"budgetmaster/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// NewMigrator returns a migrate instance reading the embedded migrations for
// the configured driver. Callers must Close it.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	dir := "migrations/postgres"
	if cfg.Driver == config.DriverSQLite {
		dir = "migrations/sqlite"
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// IsNoChange reports whether err only says there was nothing to migrate.
func IsNoChange(err error) bool {
	return errors.Is(err, migrate.ErrNoChange)
}
