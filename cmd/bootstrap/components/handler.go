package components

import (
	"barangay-reservation/internal/handler"
	"barangay-reservation/internal/handler/api"
	"barangay-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	resource *api.ResourceHandler,
	reservation *api.ReservationHandler,
	admin *api.AdminHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Resource:     resource,
		Reservation:  reservation,
		Admin:        admin,
		Notification: notification,
	}
}
