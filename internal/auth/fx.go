package auth

import (
	"github.com/armadalink/backoffice/internal/auth/repository"
	"github.com/armadalink/backoffice/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
