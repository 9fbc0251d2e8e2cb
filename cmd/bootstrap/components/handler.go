package components

import (
	"time"

	"website-rentals/internal/handler"
	"website-rentals/internal/handler/api"
	"website-rentals/internal/handler/middleware"
	"website-rentals/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewDefaultTimezone,
		api.NewRentalHandler,
		api.NewProductHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

// NewDefaultTimezone resolves the storefront wall clock used when a request
// does not name one.
func NewDefaultTimezone(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Rental.DefaultTimezone)
}
