package bootstrap

import (
	"go.uber.org/fx"

	"turfbook/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	MetricsModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
