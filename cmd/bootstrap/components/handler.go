package components

import (
	"bagtrack/internal/handler"
	"bagtrack/internal/handler/api"
	"bagtrack/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBagHandler,
		api.NewLocationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
