package customer

import (
	"github.com/armadalink/backoffice/internal/customer/repository"
	"github.com/armadalink/backoffice/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
