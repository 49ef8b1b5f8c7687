package components

import (
	"go.uber.org/fx"

	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewWaitlistCommands,
		commands.NewRecurringCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewLoyaltyQueries,
		queries.NewReviewQueries,
	),
)
