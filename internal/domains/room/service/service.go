package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/room/model"
	"lavender/internal/domains/room/model/dto"
	"lavender/internal/domains/room/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidRoomMessage = "Invalid room data. Please check all fields."

type Room interface {
	GetAll(ctx context.Context) ([]dto.RoomResponse, error)
	GetAvailable(ctx context.Context, guests int) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.RoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.RoomRequest, id string) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Room
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Room, publisher events.Publisher, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.FromModels(s.repo.GetAll(ctx)), nil
}

// GetAvailable lists the rooms that are AVAILABLE and hold at least guests people.
func (s *serviceImpl) GetAvailable(ctx context.Context, guests int) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(guests, "min=1"); err != nil {
		return res, failure.BadRequestFromString("guests must be at least 1") // nolint:wrapcheck
	}

	rooms := s.repo.Find(ctx, func(room model.Room) bool {
		return room.CanHost(guests)
	})

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.RoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidRoomMessage) // nolint:wrapcheck
	}

	room := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, room.ID))

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.RoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidRoomMessage) // nolint:wrapcheck
	}

	room, err := s.repo.Update(ctx, id, func(room *model.Room) error {
		req.ApplyTo(room)
		room.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, room.ID))

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, "Invalid room status.") // nolint:wrapcheck
	}

	room, err := s.repo.Update(ctx, id, func(room *model.Room) error {
		room.Status = req.Status
		room.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room status")

		return res, fmt.Errorf("failed to update room status: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, room.ID))

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
