package suggestion

import (
	"lavender/infras/otel"
	"lavender/internal/domains/suggestion/model/dto"
	"lavender/internal/domains/suggestion/service"
	"lavender/shared/constant"
	"lavender/shared/validator"
	"lavender/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Suggestion
	otel    otel.Otel
}

func New(service service.Suggestion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/suggestions", func(routerGroup chi.Router) {
		routerGroup.Post("/alternative-dates", handler.SuggestAlternativeDates)
	})
}

// SuggestAlternativeDates tells whether other dates would suit a stay better.
// @Summary Suggest alternative dates
// @Description Rooms with good availability are accepted as they are. Otherwise the advisor may propose other dates.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body dto.SuggestAlternativeDatesRequest true "Selected stay"
// @Success 200 {object} response.Data[dto.SuggestionResponse] "Suggestion"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/suggestions/alternative-dates [post]
func (handler *Handler) SuggestAlternativeDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuggestAlternativeDates")
	defer scope.End()

	var req dto.SuggestAlternativeDatesRequest

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(w, err)

		return
	}

	suggestion, err := handler.service.SuggestAlternativeDates(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest alternative dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, suggestion)
}
