package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/booking/model"
	"lavender/internal/domains/booking/model/dto"
	"lavender/internal/domains/booking/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, publisher events.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.FromModels(s.repo.GetAll(ctx)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Create stores a new PENDING booking request. The room it names is not looked up.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err // nolint:wrapcheck
	}

	booking := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, booking.ID))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, "Invalid booking status.") // nolint:wrapcheck
	}

	booking, err := s.repo.Update(ctx, id, func(booking *model.BookingRequest) error {
		booking.Status = req.Status
		booking.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, booking.ID))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
