package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meetbook/internal/handler/api"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	meetingHandler *api.MeetingHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, meetingHandler, bookingHandler, authMiddleware, rateLimiter)
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
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	meetingHandler *api.MeetingHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Unauthenticated surface, rate limited per client IP.
	addRoutes(engine.Group("", rateLimiter.Limit()), []route{
		{Method: http.MethodPost, Path: "/jwt", Handler: authHandler.IssueToken},
		{Method: http.MethodPost, Path: "/users", Handler: userHandler.Register},
	})

	authed := engine.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/get/my-role", Handler: userHandler.MyRole},

			{Method: http.MethodPost, Path: "/meetings", Handler: meetingHandler.Create},
			{Method: http.MethodGet, Path: "/meetings", Handler: meetingHandler.ListMine},
			{Method: http.MethodGet, Path: "/meetings/:id", Handler: meetingHandler.GetByID},
			{Method: http.MethodDelete, Path: "/meetings/:id", Handler: meetingHandler.Delete},

			// The /meeting group shares the :id param name; GetByCode reads
			// it as the invite code.
			{Method: http.MethodGet, Path: "/meeting/:id", Handler: meetingHandler.GetByCode},
			{Method: http.MethodGet, Path: "/meeting/:id/slots/:date", Handler: meetingHandler.AvailableSlots},
			{Method: http.MethodGet, Path: "/meeting/:id/bookings", Handler: meetingHandler.Bookings},
			{Method: http.MethodDelete, Path: "/meeting/booking/:id", Handler: bookingHandler.CancelAsOwner},

			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListMine},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: bookingHandler.Cancel},
		})

		admin := authed.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/users", Handler: userHandler.List},
			{Method: http.MethodGet, Path: "/users/count", Handler: userHandler.Count},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: userHandler.Delete},
		})
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
