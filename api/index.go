package handler

import (
	"lavender/config"
	"lavender/di"
	"lavender/shared/logger"
	"lavender/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	service     http.Handler
	serviceErr  error
	serviceOnce sync.Once
)

// Handler serves the application from a serverless function. The service is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service, serviceErr = di.InitializeService()
	})

	if serviceErr != nil {
		log.Error().Err(serviceErr).Msg("failed to initialize service")

		response.WithUnhealthy(w)

		return
	}

	service.ServeHTTP(w, r)
}
