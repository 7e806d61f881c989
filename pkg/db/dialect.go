package db

import (
	"fmt"

	"github.com/armadalink/backoffice/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialect builds the gorm dialector for the configured database. Postgres
// is the production target; mysql is supported; sqlite keeps a single-file
// deployment option for demos.
func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return mysql.Open(dsn), nil
	case "sqlite":
		name := cfg.DBName
		if name == "" {
			name = "backoffice.db"
		}
		return sqlite.Open(name), nil
	default:
		return nil, fmt.Errorf("unsupported db type %q", cfg.DBType)
	}
}
