package quotation

import (
	"github.com/armadalink/backoffice/internal/quotation/repository"
	"github.com/armadalink/backoffice/internal/quotation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quotation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
