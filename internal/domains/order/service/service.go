package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/order/model"
	"lavender/internal/domains/order/model/dto"
	"lavender/internal/domains/order/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidOrderMessage = "Invalid order data. Please check all fields."

type Order interface {
	GetAll(ctx context.Context) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) (dto.OrderResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Order
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Order, publisher events.Publisher, otel otel.Otel) Order {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.FromModels(s.repo.GetAll(ctx)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get order")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidOrderMessage) // nolint:wrapcheck
	}

	order := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, order.ID))

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, "Invalid order status.") // nolint:wrapcheck
	}

	order, err := s.repo.Update(ctx, id, func(order *model.RestaurantOrder) error {
		order.Status = req.Status
		order.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update order status")

		return res, fmt.Errorf("failed to update order status: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, order.ID))

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete order")

		return fmt.Errorf("failed to delete order: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
