package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "sql"

// ErrNoEmbeddedDriver marks a database type whose schema the embedded SQL
// cannot manage. The caller decides whether that is fatal.
var ErrNoEmbeddedDriver = errors.New("no embedded migration driver")

// RunMigrations brings the schema up to date on startup so a fresh
// deployment is usable without a separate migration step. The embedded SQL
// targets postgres and runs unchanged on sqlite; other database types must
// manage their schema externally.
func RunMigrations(db *sql.DB, dbType string) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	if dbType == "" {
		dbType = "postgres"
	}

	var driver database.Driver
	switch dbType {
	case "postgres":
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case "sqlite":
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return fmt.Errorf("%w for db type %q", ErrNoEmbeddedDriver, dbType)
	}
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, dbType, driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}
