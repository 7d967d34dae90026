package bootstrap

import (
	"holidaze-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	JWTModule,
	CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
