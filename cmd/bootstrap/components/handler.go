package components

import (
	"go.uber.org/fx"

	"tarifario/internal/handler"
	"tarifario/internal/handler/api"
	"tarifario/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewTariffHandler,
		api.NewQuoteHandler,
		api.NewReservationHandler,
		api.NewAgentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
