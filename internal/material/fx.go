package material

import (
	"github.com/armadalink/backoffice/internal/material/repository"
	"github.com/armadalink/backoffice/internal/material/service"
	"go.uber.org/fx"
)

var Module = fx.Module("material.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
