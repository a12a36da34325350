package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/guestservice/model"
	"lavender/internal/domains/guestservice/model/dto"
	"lavender/internal/domains/guestservice/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	gModel "lavender/shared/model"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidServiceRequestMessage = "Invalid service request data. Please check all fields."

type GuestService interface {
	GetAll(ctx context.Context) ([]dto.ServiceRequestResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceRequestResponse, error)
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateServiceStatusRequest, id string) (dto.ServiceRequestResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.GuestService
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.GuestService, publisher events.Publisher, otel otel.Otel) GuestService {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.FromModels(s.repo.GetAll(ctx)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get service request")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidServiceRequestMessage) // nolint:wrapcheck
	}

	request := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create service request")

		return res, fmt.Errorf("failed to create service request: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, request.ID))

	res.FromModel(request)

	return res, nil
}

// UpdateStatus changes the request status. Moving to Completed stamps completedAt.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateServiceStatusRequest, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, "Invalid service request status.") // nolint:wrapcheck
	}

	request, err := s.repo.Update(ctx, id, func(request *model.GuestServiceRequest) error {
		now := timezone.Now()

		request.Status = req.Status
		request.Touch(now)

		if req.Status == model.ServiceStatusCompleted {
			request.CompletedAt = gModel.Ptr(now)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update service request status")

		return res, fmt.Errorf("failed to update service request status: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, request.ID))

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete service request")

		return fmt.Errorf("failed to delete service request: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
