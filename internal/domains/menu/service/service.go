package service

import (
	"context"
	"fmt"

	"lavender/infras/otel"
	"lavender/internal/domains/menu/model"
	"lavender/internal/domains/menu/model/dto"
	"lavender/internal/domains/menu/repository"
	"lavender/shared/constant"
	"lavender/shared/events"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidMenuItemMessage = "Invalid menu item data. Please check all fields."

type Menu interface {
	GetAll(ctx context.Context, filter model.Filter) ([]dto.MenuItemResponse, error)
	Get(ctx context.Context, id string) (dto.MenuItemResponse, error)
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (dto.MenuItemResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (dto.MenuItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Menu
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Menu, publisher events.Publisher, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

// GetAll lists the menu items matching filter. Unknown category or food type values are rejected.
func (s *serviceImpl) GetAll(ctx context.Context, filter model.Filter) (res []dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if filter.Category != "" && !filter.Category.IsValid() {
		return res, failure.BadRequestFromString("unknown category " + string(filter.Category)) // nolint:wrapcheck
	}

	if filter.FoodType != "" && !filter.FoodType.IsValid() {
		return res, failure.BadRequestFromString("unknown food type " + string(filter.FoodType)) // nolint:wrapcheck
	}

	return dto.FromModels(s.repo.Find(ctx, filter.Match)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get menu item")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidMenuItemMessage) // nolint:wrapcheck
	}

	item := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionCreated, item.ID))

	res.FromModel(item)

	return res, nil
}

// Update merges the given fields into the menu item.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Summarize(err, invalidMenuItemMessage) // nolint:wrapcheck
	}

	item, err := s.repo.Update(ctx, id, func(item *model.MenuItem) error {
		req.ApplyTo(item)
		item.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update menu item")

		return res, fmt.Errorf("failed to update menu item: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionUpdated, item.ID))

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	events.PublishAsync(ctx, s.publisher, events.NewRecordChanged(model.EntityName, events.ActionDeleted, id))

	return nil
}
