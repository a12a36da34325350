package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lavender/config"
	"lavender/infras/otel/mocks"
	advisorMocks "lavender/internal/domains/suggestion/advisor/mocks"
	"lavender/internal/domains/suggestion/model"
	"lavender/internal/domains/suggestion/model/dto"
	"lavender/internal/domains/suggestion/service"
	"lavender/shared/cache"
	cacheMocks "lavender/shared/cache/mocks"
	"lavender/shared/failure"
)

func ptr[T any](v T) *T {
	return &v
}

func request(score int) dto.SuggestAlternativeDatesRequest {
	return dto.SuggestAlternativeDatesRequest{
		SelectedStartDate: "2025-08-01",
		SelectedEndDate:   "2025-08-04",
		NumberOfGuests:    2,
		CurrentPrice:      ptr(18000.0),
		AvailabilityScore: ptr(score),
	}
}

func suggested() model.Response {
	start, end := "2025-08-08", "2025-08-11"

	return model.Response{
		ShouldSuggestAlternatives: true,
		Reason:                    "Availability is low for the selected dates.",
		SuggestedStartDate:        &start,
		SuggestedEndDate:          &end,
	}
}

type fixture struct {
	advisor *advisorMocks.MockAdvisor
	cache   *cacheMocks.MockRedisCache
	svc     service.Suggestion
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		advisor: advisorMocks.NewMockAdvisor(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.advisor, f.cache, &config.Config{}, mocks.NewOtel())

	return f
}

func TestSuggestionService_GoodAvailability(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.SuggestAlternativeDates(context.Background(), request(75))
	require.NoError(t, err)

	assert.False(t, res.ShouldSuggestAlternatives)
	assert.Equal(t, "These dates and room offer good value and availability!", res.Reason)
}

func TestSuggestionService_CacheMiss(t *testing.T) {
	f := newFixture(t)
	req := request(40)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
	f.advisor.EXPECT().Suggest(gomock.Any(), req.ToModel()).Return(suggested(), nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), suggested(), 300).Return(nil)

	res, err := f.svc.SuggestAlternativeDates(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, suggested(), res)
}

func TestSuggestionService_CacheHit(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*model.Response) = suggested()

			return nil
		})

	res, err := f.svc.SuggestAlternativeDates(context.Background(), request(40))
	require.NoError(t, err)

	assert.Equal(t, suggested(), res)
}

func TestSuggestionService_CacheFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	f.advisor.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(suggested(), nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	res, err := f.svc.SuggestAlternativeDates(context.Background(), request(40))
	require.NoError(t, err)

	assert.True(t, res.ShouldSuggestAlternatives)
}

func TestSuggestionService_AdvisorFailure(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.advisor.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(model.Response{}, errors.New("timeout"))

	_, err := f.svc.SuggestAlternativeDates(context.Background(), request(40))
	require.Error(t, err)

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Equal(t, "Could not fetch alternative date suggestions at this time.", failure.GetMessage(err))
}

func TestSuggestionService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(req *dto.SuggestAlternativeDatesRequest)
		field string
	}{
		{name: "bad start date", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.SelectedStartDate = "01/08/2025" }, field: "selectedStartDate"},
		{name: "end before start", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.SelectedEndDate = "2025-07-30" }, field: "selectedEndDate"},
		{name: "no guests", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.NumberOfGuests = 0 }, field: "numberOfGuests"},
		{name: "negative price", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.CurrentPrice = ptr(-1.0) }, field: "currentPrice"},
		{name: "missing price", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.CurrentPrice = nil }, field: "currentPrice"},
		{name: "missing score", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.AvailabilityScore = nil }, field: "availabilityScore"},
		{name: "score above 100", mut: func(req *dto.SuggestAlternativeDatesRequest) { req.AvailabilityScore = ptr(101) }, field: "availabilityScore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := request(40)
			tt.mut(&req)

			_, err := f.svc.SuggestAlternativeDates(context.Background(), req)
			require.Error(t, err)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.field)
		})
	}
}
