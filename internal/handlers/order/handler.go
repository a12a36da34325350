package order

import (
	"lavender/infras/otel"
	"lavender/internal/domains/order/model/dto"
	"lavender/internal/domains/order/service"
	"lavender/shared/constant"
	"lavender/shared/validator"
	"lavender/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/restaurant/orders", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrderByID)
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Patch("/{id}/status", handler.UpdateOrderStatus)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
	})
}

// CreateOrder places a restaurant or room service order.
// @Summary Create an order
// @Description Place an order. Status defaults to Pending and totalPrice to the sum of quantity times price.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} response.Data[dto.OrderResponse] "Order created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/orders [post]
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	var req dto.CreateOrderRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders retrieves every order.
// @Summary Get all orders
// @Tags Restaurant
// @Produce json
// @Success 200 {object} response.Data[[]dto.OrderResponse] "List of orders"
// @Router /v1/restaurant/orders [get]
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	orders, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves an order by its ID.
// @Summary Get an order by ID
// @Tags Restaurant
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse] "Order details"
// @Failure 404 {object} response.Error
// @Router /v1/restaurant/orders/{id} [get]
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus moves an order along the kitchen workflow.
// @Summary Update an order status
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.OrderResponse] "Order updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/orders/{id}/status [patch]
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateOrderStatusRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order status updated to " + string(order.Status))

	response.WithJSON(w, http.StatusOK, order)
}

// DeleteOrder deletes an order by its ID.
// @Summary Delete an order by ID
// @Tags Restaurant
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message "Order deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurant/orders/{id} [delete]
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order deleted successfully")

	response.WithMessage(w, http.StatusOK, "Order deleted successfully")
}
