package guestservice

import (
	"lavender/infras/otel"
	"lavender/internal/domains/guestservice/model/dto"
	"lavender/internal/domains/guestservice/service"
	"lavender/shared/constant"
	"lavender/shared/validator"
	"lavender/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.GuestService
	otel    otel.Otel
}

func New(service service.GuestService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guest-services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServiceRequests)
		routerGroup.Get("/{id}", handler.GetServiceRequestByID)
		routerGroup.Post("/", handler.CreateServiceRequest)
		routerGroup.Patch("/{id}/status", handler.UpdateServiceRequestStatus)
		routerGroup.Delete("/{id}", handler.DeleteServiceRequest)
	})
}

// CreateServiceRequest records a guest service request.
// @Summary Create a service request
// @Description Record a guest service request. Status defaults to Requested and requestedAt to now.
// @Tags Guest Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service request details"
// @Success 201 {object} response.Data[dto.ServiceRequestResponse] "Service request created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services [post]
func (handler *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	var req dto.CreateServiceRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	serviceRequest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request created successfully")

	response.WithJSON(w, http.StatusCreated, serviceRequest)
}

// GetServiceRequests retrieves every service request.
// @Summary Get all service requests
// @Tags Guest Service
// @Produce json
// @Success 200 {object} response.Data[[]dto.ServiceRequestResponse] "List of service requests"
// @Router /v1/guest-services [get]
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequests")
	defer scope.End()

	requests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

// GetServiceRequestByID retrieves a service request by its ID.
// @Summary Get a service request by ID
// @Tags Guest Service
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} response.Data[dto.ServiceRequestResponse] "Service request details"
// @Failure 404 {object} response.Error
// @Router /v1/guest-services/{id} [get]
func (handler *Handler) GetServiceRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	serviceRequest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, serviceRequest)
}

// UpdateServiceRequestStatus changes the status of a service request.
// @Summary Update a service request status
// @Tags Guest Service
// @Accept json
// @Produce json
// @Param id path string true "Service request ID"
// @Param request body dto.UpdateServiceStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.ServiceRequestResponse] "Service request updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services/{id}/status [patch]
func (handler *Handler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceRequestStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateServiceStatusRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	serviceRequest, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service request status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request status updated to " + string(serviceRequest.Status))

	response.WithJSON(w, http.StatusOK, serviceRequest)
}

// DeleteServiceRequest deletes a service request by its ID.
// @Summary Delete a service request by ID
// @Tags Guest Service
// @Produce json
// @Param id path string true "Service request ID"
// @Success 200 {object} response.Message "Service request deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services/{id} [delete]
func (handler *Handler) DeleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request deleted successfully")

	response.WithMessage(w, http.StatusOK, "Service request deleted successfully")
}
