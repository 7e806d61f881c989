package main

import (
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/migration"
	"github.com/armadalink/backoffice/internal/server"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/armadalink/backoffice/pkg/log"
	"github.com/armadalink/backoffice/pkg/telemetry"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		telemetry.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
