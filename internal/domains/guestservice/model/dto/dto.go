package dto

import (
	"lavender/internal/domains/guestservice/model"
	"lavender/shared"
	gDto "lavender/shared/dto"
	gModel "lavender/shared/model"
	"time"
)

type CreateServiceRequest struct {
	GuestName   string              `json:"guestName"   validate:"required,min=2"`
	RoomID      string              `json:"roomId"      validate:"required"`
	ServiceType model.ServiceType   `json:"serviceType" validate:"required,enum"`
	Details     string              `json:"details"     validate:"required,min=5"`
	Status      model.ServiceStatus `json:"status"      validate:"omitempty,enum"`
}

func (c *CreateServiceRequest) ToModel(now time.Time) model.GuestServiceRequest {
	request := model.GuestServiceRequest{
		ID:          shared.NewID(model.IDPrefix),
		GuestName:   c.GuestName,
		RoomID:      c.RoomID,
		ServiceType: c.ServiceType,
		Details:     c.Details,
		Status:      model.ServiceStatusRequested,
		RequestedAt: gModel.At(now),
	}
	request.Stamp(now)

	if c.Status != "" {
		request.Status = c.Status
	}

	return request
}

type UpdateServiceStatusRequest struct {
	Status model.ServiceStatus `json:"status" validate:"required,enum"`
}

type ServiceRequestResponse struct {
	ID          string              `json:"id"`
	GuestName   string              `json:"guestName"`
	RoomID      string              `json:"roomId"`
	ServiceType model.ServiceType   `json:"serviceType"`
	Details     string              `json:"details"`
	Status      model.ServiceStatus `json:"status"`
	RequestedAt string              `json:"requestedAt"`
	CompletedAt *string             `json:"completedAt,omitempty"`
	gDto.Timestamps
}

func (r *ServiceRequestResponse) FromModel(model model.GuestServiceRequest) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.RoomID = model.RoomID
	r.ServiceType = model.ServiceType
	r.Details = model.Details
	r.Status = model.Status
	r.RequestedAt = gDto.FormatTime(model.RequestedAt)
	r.CompletedAt = gDto.FormatOptional(model.CompletedAt)
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.GuestServiceRequest) []ServiceRequestResponse {
	res := make([]ServiceRequestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
