package model

import (
	roomModel "lavender/internal/domains/room/model"
	"lavender/shared/model"
)

const (
	EntityName = "Task"
	IDPrefix   = "task"
)

type TaskType string

const (
	TaskTypeFullClean        TaskType = "Full Clean"
	TaskTypeTowelChange      TaskType = "Towel Change"
	TaskTypeTurndownService  TaskType = "Turndown Service"
	TaskTypeMaintenanceCheck TaskType = "Maintenance Check"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeFullClean, TaskTypeTowelChange, TaskTypeTurndownService, TaskTypeMaintenanceCheck:
		return true
	default:
		return false
	}
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusBlocked    TaskStatus = "Blocked"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

// HousekeepingTask is work requested for a room. LastCleaned is only stamped when the task completes.
type HousekeepingTask struct {
	ID          string             `json:"id"`
	RoomID      string             `json:"roomId"`
	RoomType    roomModel.RoomType `json:"roomType"`
	Task        TaskType           `json:"task"`
	Status      TaskStatus         `json:"status"`
	AssignedTo  string             `json:"assignedTo,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	LastCleaned *model.Time        `json:"lastCleaned,omitempty"`
	RequestedAt model.Time         `json:"requestedAt"`
	model.Timestamps
}
