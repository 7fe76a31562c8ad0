package components

import (
	"go.uber.org/fx"

	"tarifario/internal/infra/gateway"
	"tarifario/internal/infra/report"
	"tarifario/internal/pkg/config"
	"tarifario/internal/usecase/commands"
	"tarifario/internal/usecase/queries"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.AgentsConfig { return cfg.Agents },
		func(cfg config.Config) config.BookingsConfig { return cfg.Bookings },
		fx.Annotate(
			gateway.NewAgentsGateway,
			fx.As(new(queries.AgentDirectory)),
		),
		fx.Annotate(
			gateway.NewBookingsGateway,
			fx.As(new(commands.BookingGateway)),
		),
		fx.Annotate(
			report.NewQuoteWorkbook,
			fx.As(new(queries.QuoteRenderer)),
		),
	),
)
