package vehicle

import (
	"github.com/armadalink/backoffice/internal/vehicle/repository"
	"github.com/armadalink/backoffice/internal/vehicle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vehicle.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
