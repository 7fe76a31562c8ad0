package components

import (
	"go.uber.org/fx"

	"tarifario/internal/pkg/clock"
	"tarifario/internal/usecase/commands"
	"tarifario/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewTariffQueries,
		queries.NewQuoteQueries,
		queries.NewAgentQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHotelCommands,
		commands.NewTariffCommands,
		commands.NewReservationCommands,
	),
)
