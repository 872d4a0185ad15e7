package components

import (
	"context"

	"meetbook/internal/handler"
	"meetbook/internal/handler/api"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewMeetingHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
			rl := middleware.NewRateLimiter(cfg.RateLimit)
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					rl.Stop()
					return nil
				},
			})
			return rl
		},
	),
	fx.Invoke(handler.NewRouter),
)
