package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tarifario/internal/handler/api"
	"tarifario/internal/handler/middleware"
	"tarifario/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	hotelHandler *api.HotelHandler,
	tariffHandler *api.TariffHandler,
	quoteHandler *api.QuoteHandler,
	reservationHandler *api.ReservationHandler,
	agentHandler *api.AgentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, hotelHandler, tariffHandler, quoteHandler, reservationHandler, agentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	hotelHandler *api.HotelHandler,
	tariffHandler *api.TariffHandler,
	quoteHandler *api.QuoteHandler,
	reservationHandler *api.ReservationHandler,
	agentHandler *api.AgentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.GetHotel},
				{Method: http.MethodGet, Path: "/:id/tariffs", Handler: tariffHandler.ListTariffs},
				{Method: http.MethodGet, Path: "/:id/tariffs/resolve", Handler: tariffHandler.ResolveTariff},
				{Method: http.MethodPut, Path: "/:id/tariffs/general", Handler: tariffHandler.UpsertGeneral},
				{Method: http.MethodPut, Path: "/:id/tariffs/preferential", Handler: tariffHandler.UpsertPreferential},
				{Method: http.MethodDelete, Path: "/:id/tariffs/preferential", Handler: tariffHandler.RemovePreferential},
			})
		}

		quotes := apiGroup.Group("/quotes")
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.BuildQuote},
				{Method: http.MethodPost, Path: "/export", Handler: quoteHandler.ExportQuote},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.SubmitReservation},
			})
		}

		agents := apiGroup.Group("/agents")
		{
			addRoutes(agents, []route{
				{Method: http.MethodGet, Path: "/search", Handler: agentHandler.Search},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
