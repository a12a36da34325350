package model

import (
	roomModel "lavender/internal/domains/room/model"
	"lavender/shared/model"
)

const (
	EntityName = "Booking"
	IDPrefix   = "bk"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// BookingRequest is a stay request. RoomID is a weak reference that is never checked against the rooms.
type BookingRequest struct {
	ID             string             `json:"id"`
	GuestName      string             `json:"guestName"`
	GuestEmail     string             `json:"guestEmail"`
	CheckInDate    string             `json:"checkInDate"`
	CheckOutDate   string             `json:"checkOutDate"`
	NumberOfGuests int                `json:"numberOfGuests"`
	RoomType       roomModel.RoomType `json:"roomType"`
	RoomID         string             `json:"roomId"`
	TotalPrice     float64            `json:"totalPrice"`
	Status         BookingStatus      `json:"status"`
	model.Timestamps
}
