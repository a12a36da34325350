package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavender/config"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	"lavender/internal/domains/booking/model/dto"
	"lavender/internal/domains/booking/repository"
	"lavender/internal/domains/booking/service"
	"lavender/internal/handlers/booking"
	"lavender/shared/events"
)

type failingService struct {
	service.Booking
}

func (failingService) GetAll(context.Context) ([]dto.BookingResponse, error) {
	return nil, errors.New("storage unavailable")
}

func newRouter(svc service.Booking) http.Handler {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.PublicRouter)
	router.Route("/v1", handler.Router)

	return router
}

func newService() service.Booking {
	ot := mocks.NewOtel()
	store := appdata.New(storage.NewMemory(nil), ot)

	return service.New(repository.New(store, ot), events.NewPublisher(&config.Config{}, ot), ot)
}

func TestHandler_ListBookings(t *testing.T) {
	router := newRouter(newService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 4)
	assert.Equal(t, "B001", bookings[0]["id"])
	assert.Equal(t, "Alice Wonderland", bookings[0]["guestName"])
}

func TestHandler_ListBookingsFailure(t *testing.T) {
	router := newRouter(failingService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch bookings"}`, w.Body.String())
}

func TestHandler_CreateBooking(t *testing.T) {
	router := newRouter(newService())

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name: "valid booking",
			body: `{"guestName":"Test Guest","guestEmail":"guest@example.com","checkInDate":"2025-01-10",` +
				`"checkOutDate":"2025-01-12","numberOfGuests":2,"roomId":"1","roomType":"DELUXE_QUEEN","totalPrice":36000}`,
			wantStatus: http.StatusCreated,
		},
		{
			name: "check out before check in",
			body: `{"guestName":"Test Guest","guestEmail":"guest@example.com","checkInDate":"2025-01-10",` +
				`"checkOutDate":"2025-01-08","numberOfGuests":2,"roomId":"1","roomType":"DELUXE_QUEEN","totalPrice":36000}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var res struct {
					Data dto.BookingResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, "PENDING", string(res.Data.Status))
			}
		})
	}
}
