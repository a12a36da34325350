package menu_test

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
	"lavender/internal/domains/menu/repository"
	"lavender/internal/domains/menu/service"
	"lavender/internal/handlers/menu"
	"lavender/shared/events"
)

type item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	FoodType string `json:"foodType"`
	Popular  bool   `json:"popular"`
}

func newRouter() http.Handler {
	ot := mocks.NewOtel()
	store := appdata.New(storage.NewMemory(nil), ot)
	svc := service.New(repository.New(store, ot), events.NewPublisher(&config.Config{}, ot), ot)

	handler := menu.New(svc, ot)
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

func dish(name, category, foodType string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "House special",
		"price":       450,
		"category":    category,
		"foodType":    foodType,
	}
}

func decodeItems(t *testing.T, w *httptest.ResponseRecorder) []item {
	t.Helper()

	var body struct {
		Data []item `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body.Data
}

func TestHandler_GetMenuItems_Filters(t *testing.T) {
	router := newRouter()

	for _, d := range []map[string]any{
		dish("Paneer Tikka", "Snacks", "Vegetarian"),
		dish("Chicken Wings", "Snacks", "Non-Vegetarian"),
		dish("Gulab Jamun", "Dessert", "Vegetarian"),
	} {
		require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/restaurant/menu", d).Code)
	}

	tests := []struct {
		name      string
		target    string
		wantNames []string
	}{
		{name: "no filter", target: "/restaurant/menu", wantNames: []string{"Paneer Tikka", "Chicken Wings", "Gulab Jamun"}},
		{name: "category", target: "/restaurant/menu?category=Snacks", wantNames: []string{"Paneer Tikka", "Chicken Wings"}},
		{name: "food type", target: "/restaurant/menu?foodType=Vegetarian", wantNames: []string{"Paneer Tikka", "Gulab Jamun"}},
		{name: "both", target: "/restaurant/menu?category=Snacks&foodType=Non-Vegetarian", wantNames: []string{"Chicken Wings"}},
		{name: "no match", target: "/restaurant/menu?category=Main%20Course", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, w.Code)

			names := []string{}
			for _, it := range decodeItems(t, w) {
				names = append(names, it.Name)
			}

			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestHandler_UpdateMenuItem(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodPost, "/restaurant/menu", dish("Brownie", "Dessert", "Vegetarian"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data item `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Data.Popular)

	w = serve(router, http.MethodPatch, "/restaurant/menu/"+created.Data.ID, map[string]any{"popular": true})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Data item `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Data.Popular)
	assert.Equal(t, "Brownie", updated.Data.Name)

	w = serve(router, http.MethodPatch, "/restaurant/menu/missing", map[string]any{"popular": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteMenuItem(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodPost, "/restaurant/menu", dish("Fries", "Snacks", "Vegetarian"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data item `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/restaurant/menu/"+created.Data.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/restaurant/menu/"+created.Data.ID, nil).Code)
}
