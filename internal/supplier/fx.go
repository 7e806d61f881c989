package supplier

import (
	"github.com/armadalink/backoffice/internal/supplier/repository"
	"github.com/armadalink/backoffice/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
