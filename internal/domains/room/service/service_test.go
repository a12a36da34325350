package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	roomMocks "lavender/internal/domains/room/mocks"
	"lavender/internal/domains/room/model"
	"lavender/internal/domains/room/model/dto"
	"lavender/internal/domains/room/repository"
	"lavender/internal/domains/room/service"
	"lavender/shared/events"
	eventMocks "lavender/shared/events/mocks"
	"lavender/shared/failure"
)

func newService(t *testing.T, backend storage.Storage) service.Room {
	t.Helper()

	ctrl := gomock.NewController(t)
	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	store := appdata.New(backend, mocks.NewOtel())

	return service.New(repository.New(store, mocks.NewOtel()), publisher, mocks.NewOtel())
}

func ptr[T any](v T) *T {
	return &v
}

func testRoom() dto.RoomRequest {
	return dto.RoomRequest{
		Name:              "Test Room",
		Type:              model.RoomTypeStandardTwin,
		PricePerNight:     ptr(10000.0),
		Capacity:          2,
		Amenities:         []string{"WiFi"},
		ImageURL:          "",
		AvailabilityScore: ptr(80),
		Description:       "A room for testing purposes.",
		Status:            model.RoomStatusAvailable,
	}
}

func TestRoomService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	before, err := svc.GetAll(ctx)
	require.NoError(t, err)

	room, err := svc.Create(ctx, testRoom())
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, model.RoomStatusAvailable, room.Status)
	assert.Equal(t, 80, room.AvailabilityScore)
	assert.Equal(t, model.DefaultImageURL, room.ImageURL)
	assert.Equal(t, room.CreatedAt, room.UpdatedAt)

	after, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	matches := 0

	for _, r := range after {
		if r.ID == room.ID {
			matches++

			assert.Equal(t, "Test Room", r.Name)
			assert.Equal(t, []string{"WiFi"}, r.Amenities)
		}
	}

	assert.Equal(t, 1, matches)
}

func TestRoomService_CreateTrimsAmenities(t *testing.T) {
	svc := newService(t, storage.NewMemory(nil))

	req := testRoom()
	req.Amenities = []string{" WiFi ", "", "  ", "Mini Bar"}
	req.ImageURL = "https://example.com/room.png"

	room, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"WiFi", "Mini Bar"}, room.Amenities)
	assert.Equal(t, "https://example.com/room.png", room.ImageURL)
}

func TestRoomService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.RoomRequest)
		field  string
	}{
		{
			name:   "availability score out of range",
			mutate: func(req *dto.RoomRequest) { req.AvailabilityScore = ptr(150) },
			field:  "availabilityScore",
		},
		{
			name:   "capacity zero",
			mutate: func(req *dto.RoomRequest) { req.Capacity = 0 },
			field:  "capacity",
		},
		{
			name:   "missing name",
			mutate: func(req *dto.RoomRequest) { req.Name = "" },
			field:  "name",
		},
		{
			name:   "unknown type",
			mutate: func(req *dto.RoomRequest) { req.Type = "PENTHOUSE" },
			field:  "type",
		},
		{
			name:   "negative price",
			mutate: func(req *dto.RoomRequest) { req.PricePerNight = ptr(-1.0) },
			field:  "pricePerNight",
		},
		{
			name:   "missing price",
			mutate: func(req *dto.RoomRequest) { req.PricePerNight = nil },
			field:  "pricePerNight",
		},
		{
			name:   "missing availability score",
			mutate: func(req *dto.RoomRequest) { req.AvailabilityScore = nil },
			field:  "availabilityScore",
		},
		{
			name:   "short description",
			mutate: func(req *dto.RoomRequest) { req.Description = "tiny" },
			field:  "description",
		},
		{
			name:   "malformed image url",
			mutate: func(req *dto.RoomRequest) { req.ImageURL = "not a url" },
			field:  "imageUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := storage.NewMemory(nil)
			svc := newService(t, backend)

			before, _ := svc.GetAll(ctx)
			writes := backend.Writes()

			req := testRoom()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			require.Error(t, err)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, "Invalid room data. Please check all fields.", err.Error())
			assert.Contains(t, failure.GetFields(err), tt.field)
			assert.Equal(t, writes, backend.Writes())

			after, _ := svc.GetAll(ctx)
			assert.Equal(t, before, after)
		})
	}
}

func TestRoomService_GetAvailable(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	rooms, err := svc.GetAvailable(ctx, 3)
	require.NoError(t, err)

	// Only the family room is both available and large enough in the seed data.
	require.Len(t, rooms, 1)
	assert.Equal(t, "4", rooms[0].ID)

	rooms, err = svc.GetAvailable(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = svc.GetAvailable(ctx, 0)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRoomService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	created, err := svc.Create(ctx, testRoom())
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	req := testRoom()
	req.Name = "Renamed Room"
	req.Capacity = 3

	updated, err := svc.Update(ctx, req, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed Room", updated.Name)
	assert.Equal(t, 3, updated.Capacity)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	room, err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: model.RoomStatusCleaning}, "1")
	require.NoError(t, err)
	assert.Equal(t, model.RoomStatusCleaning, room.Status)

	_, err = svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: "DIRTY"}, "1")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRoomService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	before, _ := svc.GetAll(ctx)

	err := svc.Delete(ctx, "nonexistent-id")
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Room with ID nonexistent-id not found", failure.GetMessage(err))

	_, err = svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: model.RoomStatusAvailable}, "nonexistent-id")
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Get(ctx, "nonexistent-id")
	assert.True(t, failure.IsNotFound(err))

	after, _ := svc.GetAll(ctx)
	assert.Equal(t, before, after)
}

func TestRoomService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	require.NoError(t, svc.Delete(ctx, "2"))

	rooms, _ := svc.GetAll(ctx)
	ids := make([]string, 0, len(rooms))

	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestRoomService_ReadsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, storage.NewMemory(nil))

	first, err := svc.GetAll(ctx)
	require.NoError(t, err)

	second, err := svc.GetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoomService_Durability(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(nil)

	created, err := newService(t, backend).Create(ctx, testRoom())
	require.NoError(t, err)

	restarted := newService(t, backend)

	room, err := restarted.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, room)

	require.NoError(t, restarted.Delete(ctx, created.ID))

	_, err = newService(t, backend).Get(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))
}

func TestRoomService_StorageFailure(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(nil)
	svc := newService(t, backend)

	before, _ := svc.GetAll(ctx)
	stored := backend.Bytes()

	backend.FailWrites = errors.New("disk full")

	_, err := svc.Create(ctx, testRoom())
	require.Error(t, err)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "Failed to save data.", failure.GetMessage(err))
	assert.Equal(t, stored, backend.Bytes())

	after, _ := svc.GetAll(ctx)
	assert.Equal(t, before, after)
}

func TestRoomService_CreateWithMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	svc := service.New(mockRepo, mockPublisher, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "publishes created event",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Cond(func(event events.RecordChanged) bool {
						return event.Entity == model.EntityName && event.Action == events.ActionCreated
					})).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.StorageError(errors.New("disk full")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), testRoom())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
