package model

import (
	"lavender/shared/model"
)

const (
	EntityName = "Service request"
	IDPrefix   = "svc"
)

type ServiceType string

const (
	ServiceTypeLaundry        ServiceType = "Laundry"
	ServiceTypeCabBooking     ServiceType = "Cab Booking"
	ServiceTypeSpaAppointment ServiceType = "Spa Appointment"
	ServiceTypeConcierge      ServiceType = "Concierge"
	ServiceTypeWakeUpCall     ServiceType = "Wake-up Call"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeLaundry, ServiceTypeCabBooking, ServiceTypeSpaAppointment,
		ServiceTypeConcierge, ServiceTypeWakeUpCall:
		return true
	default:
		return false
	}
}

type ServiceStatus string

const (
	ServiceStatusRequested  ServiceStatus = "Requested"
	ServiceStatusInProgress ServiceStatus = "In Progress"
	ServiceStatusCompleted  ServiceStatus = "Completed"
	ServiceStatusCancelled  ServiceStatus = "Cancelled"
)

func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusRequested, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusCancelled:
		return true
	default:
		return false
	}
}

type GuestServiceRequest struct {
	ID          string        `json:"id"`
	GuestName   string        `json:"guestName"`
	RoomID      string        `json:"roomId"`
	ServiceType ServiceType   `json:"serviceType"`
	Details     string        `json:"details"`
	Status      ServiceStatus `json:"status"`
	RequestedAt model.Time    `json:"requestedAt"`
	CompletedAt *model.Time   `json:"completedAt,omitempty"`
	model.Timestamps
}
