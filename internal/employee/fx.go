package employee

import (
	"github.com/armadalink/backoffice/internal/employee/repository"
	"github.com/armadalink/backoffice/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
