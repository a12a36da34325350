package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/housekeeping/model"
	"lavender/internal/domains/housekeeping/model/dto"
	"lavender/internal/domains/housekeeping/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	gModel "lavender/shared/model"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidTaskMessage = "Invalid task data. Please check all fields."

type Housekeeping interface {
	GetAll(ctx context.Context) ([]dto.TaskResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateTaskStatusRequest, id string) (dto.TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Housekeeping
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Housekeeping, publisher events.Publisher, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.FromModels(s.repo.GetAll(ctx)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get task")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidTaskMessage) // nolint:wrapcheck
	}

	task := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return res, fmt.Errorf("failed to create task: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, task.ID))

	res.FromModel(task)

	return res, nil
}

// UpdateStatus changes the task status. Moving to Completed stamps lastCleaned.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateTaskStatusRequest, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, "Invalid task status.") // nolint:wrapcheck
	}

	task, err := s.repo.Update(ctx, id, func(task *model.HousekeepingTask) error {
		now := timezone.Now()

		task.Status = req.Status
		task.Touch(now)

		if req.Status == model.TaskStatusCompleted {
			task.LastCleaned = gModel.Ptr(now)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update task status")

		return res, fmt.Errorf("failed to update task status: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, task.ID))

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete task")

		return fmt.Errorf("failed to delete task: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
