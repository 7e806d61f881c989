package region

import "go.uber.org/fx"

var Module = fx.Module("region.repository",
	fx.Provide(NewRepository),
)
