package vendor

import (
	"github.com/armadalink/backoffice/internal/vendors/repository"
	"github.com/armadalink/backoffice/internal/vendors/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vendor.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
