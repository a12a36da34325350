// Package advisor decides whether a guest should be offered other dates for a stay.
package advisor

//go:generate go run go.uber.org/mock/mockgen -source=./advisor.go -destination=./mocks/advisor_mock.go -package=mocks

import (
	"context"
	"lavender/config"
	"lavender/infras/otel"
	"lavender/internal/domains/suggestion/model"

	"github.com/rs/zerolog/log"
)

type Advisor interface {
	Suggest(ctx context.Context, req model.Request) (model.Response, error)
}

// New returns the HTTP advisor when an endpoint is configured and the rules advisor otherwise.
func New(cfg *config.Config, otel otel.Otel) Advisor {
	if cfg.Suggestion.Endpoint == "" {
		log.Info().Msg("No suggestion endpoint configured, using built-in rules")

		return NewRules(cfg.Suggestion.HighPrice)
	}

	return NewHTTP(cfg, otel)
}
