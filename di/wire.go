//go:build wireinject
// +build wireinject

package di

import (
	"lavender/config"
	"lavender/infras/otel"
	"lavender/infras/redis"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	"lavender/shared/cache"
	"lavender/shared/events"
	"lavender/transport/http"
	"lavender/transport/http/middleware"
	"lavender/transport/http/router"

	"github.com/google/wire"

	bookingRepository "lavender/internal/domains/booking/repository"
	bookingService "lavender/internal/domains/booking/service"
	bookingHandler "lavender/internal/handlers/booking"

	guestServiceRepository "lavender/internal/domains/guestservice/repository"
	guestServiceService "lavender/internal/domains/guestservice/service"
	guestServiceHandler "lavender/internal/handlers/guestservice"

	housekeepingRepository "lavender/internal/domains/housekeeping/repository"
	housekeepingService "lavender/internal/domains/housekeeping/service"
	housekeepingHandler "lavender/internal/handlers/housekeeping"

	menuRepository "lavender/internal/domains/menu/repository"
	menuService "lavender/internal/domains/menu/service"
	menuHandler "lavender/internal/handlers/menu"

	orderRepository "lavender/internal/domains/order/repository"
	orderService "lavender/internal/domains/order/service"
	orderHandler "lavender/internal/handlers/order"

	roomRepository "lavender/internal/domains/room/repository"
	roomService "lavender/internal/domains/room/service"
	roomHandler "lavender/internal/handlers/room"

	settingRepository "lavender/internal/domains/setting/repository"
	settingService "lavender/internal/domains/setting/service"
	settingHandler "lavender/internal/handlers/setting"

	suggestionAdvisor "lavender/internal/domains/suggestion/advisor"
	suggestionService "lavender/internal/domains/suggestion/service"
	suggestionHandler "lavender/internal/handlers/suggestion"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	storage.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
	appdata.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var guestServiceDomain = wire.NewSet(
	guestServiceRepository.New,
	guestServiceService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var suggestionDomain = wire.NewSet(
	suggestionAdvisor.New,
	suggestionService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	orderDomain,
	menuDomain,
	housekeepingDomain,
	guestServiceDomain,
	settingDomain,
	suggestionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	orderHandler.New,
	menuHandler.New,
	housekeepingHandler.New,
	guestServiceHandler.New,
	settingHandler.New,
	suggestionHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
