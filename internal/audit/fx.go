package audit

import (
	"github.com/armadalink/backoffice/internal/audit/repository"
	"github.com/armadalink/backoffice/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
