package router

import (
	"lavender/internal/handlers/booking"
	"lavender/internal/handlers/guestservice"
	"lavender/internal/handlers/housekeeping"
	"lavender/internal/handlers/menu"
	"lavender/internal/handlers/order"
	"lavender/internal/handlers/room"
	"lavender/internal/handlers/setting"
	"lavender/internal/handlers/suggestion"
	"lavender/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room         room.Handler
	Booking      booking.Handler
	Order        order.Handler
	Menu         menu.Handler
	Housekeeping housekeeping.Handler
	GuestService guestservice.Handler
	Setting      setting.Handler
	Suggestion   suggestion.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.PublicRouter(routerGroup)
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.APIKey)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.GuestService.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Suggestion.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
