package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavender/config"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	"lavender/internal/domains/housekeeping/model"
	"lavender/internal/domains/housekeeping/model/dto"
	"lavender/internal/domains/housekeeping/repository"
	"lavender/internal/domains/housekeeping/service"
	roomModel "lavender/internal/domains/room/model"
	"lavender/shared/events"
	"lavender/shared/failure"
)

func newService(backend storage.Storage) service.Housekeeping {
	ot := mocks.NewOtel()
	store := appdata.New(backend, ot)

	return service.New(repository.New(store, ot), events.NewPublisher(&config.Config{}, ot), ot)
}

func fullClean() dto.CreateTaskRequest {
	return dto.CreateTaskRequest{
		RoomID:   "1",
		RoomType: roomModel.RoomTypeDeluxeQueen,
		Task:     model.TaskTypeFullClean,
	}
}

func TestHousekeepingService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(storage.NewMemory(nil))

	task, err := svc.Create(ctx, fullClean())
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.NotEmpty(t, task.RequestedAt)
	assert.Nil(t, task.LastCleaned)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	tasks, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
}

func TestHousekeepingService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(storage.NewMemory(nil))

	req := fullClean()
	req.RoomID = ""
	req.Task = "Vacuum"

	_, err := svc.Create(ctx, req)
	require.Error(t, err)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "Invalid task data. Please check all fields.", err.Error())
	assert.Contains(t, failure.GetFields(err), "roomId")
	assert.Contains(t, failure.GetFields(err), "task")

	tasks, _ := svc.GetAll(ctx)
	assert.Empty(t, tasks)
}

func TestHousekeepingService_UpdateStatusSideEffects(t *testing.T) {
	tests := []struct {
		name            string
		status          model.TaskStatus
		wantLastCleaned bool
	}{
		{name: "completed stamps last cleaned", status: model.TaskStatusCompleted, wantLastCleaned: true},
		{name: "in progress", status: model.TaskStatusInProgress, wantLastCleaned: false},
		{name: "blocked", status: model.TaskStatusBlocked, wantLastCleaned: false},
		{name: "pending", status: model.TaskStatusPending, wantLastCleaned: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newService(storage.NewMemory(nil))

			task, err := svc.Create(ctx, fullClean())
			require.NoError(t, err)

			updated, err := svc.UpdateStatus(ctx, dto.UpdateTaskStatusRequest{Status: tt.status}, task.ID)
			require.NoError(t, err)

			assert.Equal(t, tt.status, updated.Status)

			if tt.wantLastCleaned {
				require.NotNil(t, updated.LastCleaned)
				assert.Equal(t, updated.UpdatedAt, *updated.LastCleaned)
			} else {
				assert.Nil(t, updated.LastCleaned)
			}
		})
	}
}

func TestHousekeepingService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(storage.NewMemory(nil))

	_, err := svc.UpdateStatus(ctx, dto.UpdateTaskStatusRequest{Status: model.TaskStatusCompleted}, "missing")
	assert.Equal(t, "Task with ID missing not found", failure.GetMessage(err))

	err = svc.Delete(ctx, "missing")
	assert.True(t, failure.IsNotFound(err))
}

func TestHousekeepingService_Delete(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(nil)
	svc := newService(backend)

	task, err := svc.Create(ctx, fullClean())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))

	tasks, _ := newService(backend).GetAll(ctx)
	assert.Empty(t, tasks)
}
