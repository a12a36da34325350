package room_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavender/config"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	"lavender/internal/domains/room/repository"
	"lavender/internal/domains/room/service"
	"lavender/internal/handlers/room"
	"lavender/shared/events"
)

func newRouter() http.Handler {
	ot := mocks.NewOtel()
	store := appdata.New(storage.NewMemory(nil), ot)
	svc := service.New(repository.New(store, ot), events.NewPublisher(&config.Config{}, ot), ot)

	handler := room.New(svc, ot)
	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func serve(router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer

	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}

	req := httptest.NewRequest(method, target, &payload)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandler_CreateRoom(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantFields []string
	}{
		{
			name: "valid room",
			body: map[string]any{
				"name":              "Test Room",
				"type":              "STANDARD_TWIN",
				"pricePerNight":     10000,
				"capacity":          2,
				"amenities":         []string{"WiFi"},
				"imageUrl":          "",
				"availabilityScore": 80,
				"description":       "A room for testing purposes.",
				"status":            "AVAILABLE",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid room",
			body: map[string]any{
				"name":              "Test Room",
				"type":              "STANDARD_TWIN",
				"capacity":          0,
				"availabilityScore": 150,
				"description":       "A room for testing purposes.",
				"status":            "AVAILABLE",
			},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"capacity", "availabilityScore"},
		},
		{
			name: "missing price and availability score",
			body: map[string]any{
				"name":        "Test Room",
				"type":        "STANDARD_TWIN",
				"capacity":    2,
				"amenities":   []string{"WiFi"},
				"description": "A room for testing purposes.",
				"status":      "AVAILABLE",
			},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"pricePerNight", "availabilityScore"},
		},
		{
			name:       "malformed body",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodPost, "/rooms", tt.body)

			require.Equal(t, tt.wantStatus, w.Code)

			var res struct {
				Data   map[string]any      `json:"data"`
				Errors map[string][]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

			for _, field := range tt.wantFields {
				assert.Contains(t, res.Errors, field)
			}

			if tt.wantStatus == http.StatusCreated {
				assert.NotEmpty(t, res.Data["id"])
				assert.Equal(t, "https://placehold.co/600x400.png", res.Data["imageUrl"])
			}
		})
	}
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodGet, "/rooms/available?guests=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Data, 1)

	w = serve(router, http.MethodGet, "/rooms/available?guests=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteRoomNotFound(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodDelete, "/rooms/nonexistent-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Room with ID nonexistent-id not found", res.Error)
}

func TestHandler_UpdateRoomStatus(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodPatch, "/rooms/1/status", map[string]string{"status": "CLEANING"})
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/rooms/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "CLEANING", res.Data["status"])
}
