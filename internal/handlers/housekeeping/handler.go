package housekeeping

import (
	"lavender/infras/otel"
	"lavender/internal/domains/housekeeping/model/dto"
	"lavender/internal/domains/housekeeping/service"
	"lavender/shared/constant"
	"lavender/shared/validator"
	"lavender/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping/tasks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Patch("/{id}/status", handler.UpdateTaskStatus)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask requests housekeeping work for a room.
// @Summary Create a task
// @Description Request housekeeping work. Status defaults to Pending and requestedAt to now.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} response.Data[dto.TaskResponse] "Task created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks [post]
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	var req dto.CreateTaskRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task created successfully")

	response.WithJSON(w, http.StatusCreated, task)
}

// GetTasks retrieves every task.
// @Summary Get all tasks
// @Tags Housekeeping
// @Produce json
// @Success 200 {object} response.Data[[]dto.TaskResponse] "List of tasks"
// @Router /v1/housekeeping/tasks [get]
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	tasks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves a task by its ID.
// @Summary Get a task by ID
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task details"
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [get]
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get task by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTaskStatus changes the status of a task.
// @Summary Update a task status
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks/{id}/status [patch]
func (handler *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaskStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTaskStatusRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update task status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task status updated to " + string(task.Status))

	response.WithJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task by its ID.
// @Summary Delete a task by ID
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Task deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/tasks/{id} [delete]
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task deleted successfully")

	response.WithMessage(w, http.StatusOK, "Task deleted successfully")
}
