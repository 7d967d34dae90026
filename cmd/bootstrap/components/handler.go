package components

import (
	"holidaze-booking/internal/handler"
	"holidaze-booking/internal/handler/api"
	"holidaze-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewVenueHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
