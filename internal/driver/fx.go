package driver

import (
	"github.com/armadalink/backoffice/internal/driver/repository"
	"github.com/armadalink/backoffice/internal/driver/service"
	"go.uber.org/fx"
)

var Module = fx.Module("driver.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
