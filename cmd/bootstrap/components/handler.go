package components

import (
	"ecommerce-backend/internal/handler"
	"ecommerce-backend/internal/handler/api"
	"ecommerce-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewOrderHandler,
		api.NewSystemHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
