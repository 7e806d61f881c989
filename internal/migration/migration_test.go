package migration

import (
	"errors"
	"testing"

	"github.com/armadalink/backoffice/pkg/db"
)

func TestRunMigrationsOnSqlite(t *testing.T) {
	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}

	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	for _, table := range []string{"customers", "vendors", "code_sequences", "sessions"} {
		var count int64
		err := conn.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count).Error
		if err != nil {
			t.Fatalf("schema lookup failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %s after migrations", table)
		}
	}

	// Running again is a no-op, not an error.
	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("re-run failed: %v", err)
	}
}

func TestRunMigrationsUnknownDialect(t *testing.T) {
	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}

	err = RunMigrations(sqlDB, "mysql")
	if !errors.Is(err, ErrNoEmbeddedDriver) {
		t.Fatalf("expected ErrNoEmbeddedDriver, got %v", err)
	}
}
