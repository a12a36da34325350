package dto

import (
	"lavender/internal/domains/housekeeping/model"
	roomModel "lavender/internal/domains/room/model"
	"lavender/shared"
	gDto "lavender/shared/dto"
	gModel "lavender/shared/model"
	"time"
)

type CreateTaskRequest struct {
	RoomID     string             `json:"roomId"     validate:"required"`
	RoomType   roomModel.RoomType `json:"roomType"   validate:"required,enum"`
	Task       model.TaskType     `json:"task"       validate:"required,enum"`
	Status     model.TaskStatus   `json:"status"     validate:"omitempty,enum"`
	AssignedTo string             `json:"assignedTo"`
	Notes      string             `json:"notes"`
}

func (c *CreateTaskRequest) ToModel(now time.Time) model.HousekeepingTask {
	task := model.HousekeepingTask{
		ID:          shared.NewID(model.IDPrefix),
		RoomID:      c.RoomID,
		RoomType:    c.RoomType,
		Task:        c.Task,
		Status:      model.TaskStatusPending,
		AssignedTo:  c.AssignedTo,
		Notes:       c.Notes,
		RequestedAt: gModel.At(now),
	}
	task.Stamp(now)

	if c.Status != "" {
		task.Status = c.Status
	}

	return task
}

type UpdateTaskStatusRequest struct {
	Status model.TaskStatus `json:"status" validate:"required,enum"`
}

type TaskResponse struct {
	ID          string             `json:"id"`
	RoomID      string             `json:"roomId"`
	RoomType    roomModel.RoomType `json:"roomType"`
	Task        model.TaskType     `json:"task"`
	Status      model.TaskStatus   `json:"status"`
	AssignedTo  string             `json:"assignedTo,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	LastCleaned *string            `json:"lastCleaned,omitempty"`
	RequestedAt string             `json:"requestedAt"`
	gDto.Timestamps
}

func (r *TaskResponse) FromModel(model model.HousekeepingTask) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomType = model.RoomType
	r.Task = model.Task
	r.Status = model.Status
	r.AssignedTo = model.AssignedTo
	r.Notes = model.Notes
	r.LastCleaned = gDto.FormatOptional(model.LastCleaned)
	r.RequestedAt = gDto.FormatTime(model.RequestedAt)
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.HousekeepingTask) []TaskResponse {
	res := make([]TaskResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
