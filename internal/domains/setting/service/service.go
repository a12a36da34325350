package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/setting/model"
	"lavender/internal/domains/setting/model/dto"
	"lavender/internal/domains/setting/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidSettingsMessage = "Invalid settings data. Please check all fields."

type Setting interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Setting
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Setting, publisher events.Publisher, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

// Get returns the hotel settings. When none are stored the defaults are saved and returned.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	if settings := s.repo.Get(ctx); settings != nil {
		res.FromModel(*settings)

		return res, nil
	}

	defaults := appdata.DefaultHotelSettings(timezone.Now())

	settings, err := s.repo.Save(ctx, func(current *model.HotelSettings) (model.HotelSettings, error) {
		if current != nil {
			return *current, nil
		}

		return defaults, nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to persist default settings")
		scope.TraceError(err)

		settings = defaults
	}

	res.FromModel(settings)

	return res, nil
}

// Update replaces the editable settings. The id stays the singleton id and createdAt is kept.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidSettingsMessage) // nolint:wrapcheck
	}

	now := timezone.Now()

	settings, err := s.repo.Save(ctx, func(current *model.HotelSettings) (model.HotelSettings, error) {
		next := model.HotelSettings{ID: model.SingletonID}
		next.Stamp(now)

		if current != nil {
			next.CreatedAt = current.CreatedAt
		}

		req.ApplyTo(&next)

		return next, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return res, fmt.Errorf("failed to update settings: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, settings.ID))

	res.FromModel(settings)

	return res, nil
}
