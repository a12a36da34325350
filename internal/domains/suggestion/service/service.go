package service

import (
	"context"
	"errors"
	"fmt"

	"lavender/config"
	"lavender/infras/otel"
	"lavender/internal/domains/suggestion/advisor"
	"lavender/internal/domains/suggestion/model"
	"lavender/internal/domains/suggestion/model/dto"
	"lavender/shared"
	"lavender/shared/cache"
	"lavender/shared/constant"
	"lavender/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix = "suggestion:alternative-dates"
	goodValue      = "These dates and room offer good value and availability!"
	unavailable    = "Could not fetch alternative date suggestions at this time."

	defaultAvailabilityThreshold = 60
	defaultCacheTTL              = 300
)

type Suggestion interface {
	SuggestAlternativeDates(ctx context.Context, req dto.SuggestAlternativeDatesRequest) (dto.SuggestionResponse, error)
}

type serviceImpl struct {
	advisor   advisor.Advisor
	cache     cache.RedisCache
	threshold int
	ttl       int
	otel      otel.Otel
}

func New(advisor advisor.Advisor, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Suggestion {
	threshold := cfg.Suggestion.AvailabilityThreshold
	if threshold <= 0 {
		threshold = defaultAvailabilityThreshold
	}

	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &serviceImpl{
		advisor:   advisor,
		cache:     cache,
		threshold: threshold,
		ttl:       ttl,
		otel:      otel,
	}
}

// SuggestAlternativeDates asks the advisor whether other dates suit the guest better. Rooms that are
// already available enough are accepted without asking. Answers are cached per request.
func (s *serviceImpl) SuggestAlternativeDates(ctx context.Context, req dto.SuggestAlternativeDatesRequest) (res dto.SuggestionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SuggestAlternativeDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	stay := req.ToModel()

	if stay.AvailabilityScore >= s.threshold {
		return model.Response{Reason: goodValue}, nil
	}

	key := shared.BuildCacheKey(cacheKeyPrefix, stay.SelectedStartDate, stay.SelectedEndDate,
		stay.NumberOfGuests, stay.CurrentPrice, stay.AvailabilityScore)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		scope.AddEvent("Suggestion served from cache")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read cached suggestion")
	}

	res, err = s.advisor.Suggest(ctx, stay)
	if err != nil {
		log.Error().Err(err).Msg("failed to get alternative date suggestion")

		return res, failure.BadGatewayFromString(unavailable, fmt.Errorf("failed to get suggestion: %w", err))
	}

	if saveErr := s.cache.Save(ctx, key, res, s.ttl); saveErr != nil {
		log.Warn().Err(saveErr).Str("key", key).Msg("failed to cache suggestion")
	}

	return res, nil
}
