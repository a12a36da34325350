package appdata_test

import (
	"context"
	"encoding/json"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	menuModel "lavender/internal/domains/menu/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	doc := appdata.Seed()

	require.Len(t, doc.Rooms, 4)
	require.Len(t, doc.BookingRequests, 4)
	assert.Empty(t, doc.RestaurantOrders)
	assert.NotNil(t, doc.MenuItems)
	require.NotNil(t, doc.HotelSettings)
	assert.Equal(t, "singleton", doc.HotelSettings.ID)
	assert.Equal(t, "Lavender Luxury Hotel", doc.HotelSettings.HotelName)

	for _, room := range doc.Rooms {
		assert.Equal(t, room.CreatedAt, room.UpdatedAt)
	}
}

func TestStore_FirstReadPersistsSeed(t *testing.T) {
	backend := storage.NewMemory(nil)
	store := appdata.New(backend, mocks.NewOtel())

	doc := store.Read(context.Background())
	assert.Len(t, doc.Rooms, 4)
	assert.Equal(t, 1, backend.Writes())

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(backend.Bytes(), &raw))

	for _, key := range []string{"rooms", "bookingRequests", "restaurantOrders", "menuItems", "housekeepingTasks", "guestServiceRequests", "hotelSettings"} {
		assert.Contains(t, raw, key)
	}

	assert.JSONEq(t, `[]`, string(raw["restaurantOrders"]))
}

func TestStore_NullSettingsStayNull(t *testing.T) {
	backend := storage.NewMemory([]byte(`{"rooms":[],"hotelSettings":null}`))
	store := appdata.New(backend, mocks.NewOtel())

	doc := store.Read(context.Background())

	assert.Nil(t, doc.HotelSettings)
	assert.NotNil(t, doc.BookingRequests)
}

func TestStore_FileSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	first := appdata.New(storage.NewFile(path, mocks.NewOtel()), mocks.NewOtel())
	require.NoError(t, first.Mutate(ctx, func(doc *appdata.Document) error {
		doc.Rooms = doc.Rooms[:1]

		return nil
	}))

	second := appdata.New(storage.NewFile(path, mocks.NewOtel()), mocks.NewOtel())

	doc := second.Read(ctx)
	assert.Len(t, doc.Rooms, 1)
	assert.Len(t, doc.BookingRequests, 4)
}

func TestStore_OddTimestampsKeepTheDocument(t *testing.T) {
	backend := storage.NewMemory([]byte(`{
  "rooms": [{"id": "r1", "name": "Kept Room", "createdAt": "", "updatedAt": "2025-01-01T10:00:00Z"}],
  "housekeepingTasks": [{"id": "t1", "roomId": "r1", "lastCleaned": "", "requestedAt": "yesterday"}]
}`))
	store := appdata.New(backend, mocks.NewOtel())
	ctx := context.Background()

	doc := store.Read(ctx)
	require.Len(t, doc.Rooms, 1)
	assert.Equal(t, "Kept Room", doc.Rooms[0].Name)
	assert.True(t, doc.Rooms[0].CreatedAt.IsZero())
	assert.Equal(t, 2025, doc.Rooms[0].UpdatedAt.Year())

	require.Len(t, doc.HousekeepingTasks, 1)
	require.NotNil(t, doc.HousekeepingTasks[0].LastCleaned)
	assert.True(t, doc.HousekeepingTasks[0].LastCleaned.IsZero())
	assert.True(t, doc.HousekeepingTasks[0].RequestedAt.IsZero())

	require.NoError(t, store.Mutate(ctx, func(doc *appdata.Document) error {
		doc.MenuItems = append(doc.MenuItems, menuModel.MenuItem{ID: "m1"})

		return nil
	}))

	doc = store.Read(ctx)
	assert.Len(t, doc.Rooms, 1)
	assert.Len(t, doc.HousekeepingTasks, 1)
	assert.Len(t, doc.MenuItems, 1)
}
