package components

import (
	"acara-api/internal/handler"
	"acara-api/internal/handler/api"
	"acara-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewTicketHandler,
		api.NewOrderHandler,
		api.NewBannerHandler,
		api.NewCategoryHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			event *api.EventHandler,
			ticket *api.TicketHandler,
			order *api.OrderHandler,
			banner *api.BannerHandler,
			category *api.CategoryHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Event:    event,
				Ticket:   ticket,
				Order:    order,
				Banner:   banner,
				Category: category,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
