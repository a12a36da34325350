package main

import (
	"lavender/config"
	"lavender/di"
	"lavender/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Lavender Hotel API
// @version 1.0
// @description Back-office API for rooms, bookings, restaurant, housekeeping, guest services and hotel settings.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
