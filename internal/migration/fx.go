package migration

import (
	"errors"

	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, logger *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
			if !errors.Is(err, ErrNoEmbeddedDriver) {
				return err
			}
			logger.Warn("embedded migrations skipped, schema must be managed externally",
				zap.String("db_type", cfg.DBType))
		}

		if err := seed.EnsureRegions(conn); err != nil {
			return err
		}
		return seed.EnsureAdmin(conn, cfg)
	}),
)
