package components

import (
	"fieldbook/internal/handler"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAdminHandler,
		api.NewReservationHandler,
		api.NewResourceHandler,
		api.NewCustomerHandler,
		api.NewIncomeHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	admin *api.AdminHandler,
	reservation *api.ReservationHandler,
	resource *api.ResourceHandler,
	customer *api.CustomerHandler,
	income *api.IncomeHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Admin:       admin,
		Reservation: reservation,
		Resource:    resource,
		Customer:    customer,
		Income:      income,
	}
}
