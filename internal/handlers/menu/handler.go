package menu

import (
	"lavender/infras/otel"
	"lavender/internal/domains/menu/model"
	"lavender/internal/domains/menu/model/dto"
	"lavender/internal/domains/menu/service"
	"lavender/shared/constant"
	"lavender/shared/validator"
	"lavender/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/restaurant/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// CreateMenuItem adds a dish to the menu.
// @Summary Create a menu item
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Menu item details"
// @Success 201 {object} response.Data[dto.MenuItemResponse] "Menu item created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/menu [post]
func (handler *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	var req dto.CreateMenuItemRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item created successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// GetMenuItems retrieves the menu.
// @Summary Get menu items
// @Description Retrieve the menu, optionally narrowed by category and food type.
// @Tags Restaurant
// @Produce json
// @Param category query string false "Food category" Enums(Snacks, Main Course, Dessert)
// @Param foodType query string false "Food type" Enums(Vegetarian, Non-Vegetarian)
// @Success 200 {object} response.Data[[]dto.MenuItemResponse] "List of menu items"
// @Failure 400 {object} response.Error
// @Router /v1/restaurant/menu [get]
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	filter := model.Filter{
		Category: model.FoodCategory(r.URL.Query().Get(constant.RequestParamCategory)),
		FoodType: model.FoodType(r.URL.Query().Get(constant.RequestParamFoodType)),
	}

	items, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Tags Restaurant
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurant/menu/{id} [get]
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateMenuItem changes some fields of a menu item.
// @Summary Update a menu item
// @Description Update the given fields of a menu item. Absent fields are left untouched.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/menu/{id} [patch]
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateMenuItemRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item updated successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteMenuItem removes a dish from the menu.
// @Summary Delete a menu item by ID
// @Tags Restaurant
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/menu/{id} [delete]
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
