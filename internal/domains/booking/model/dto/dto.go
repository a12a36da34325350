package dto

import (
	"lavender/internal/domains/booking/model"
	roomModel "lavender/internal/domains/room/model"
	"lavender/shared"
	gDto "lavender/shared/dto"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"
	"time"
)

const (
	invalidBookingMessage = "Invalid data provided. Please check the fields and try again."
	checkOutBeforeMessage = "Check-out date must be after check-in date."
)

type CreateBookingRequest struct {
	GuestName      string             `json:"guestName"      validate:"required,min=2"`
	GuestEmail     string             `json:"guestEmail"     validate:"required,email"`
	CheckInDate    string             `json:"checkInDate"    validate:"required,datetime=2006-01-02"`
	CheckOutDate   string             `json:"checkOutDate"   validate:"required,datetime=2006-01-02"`
	NumberOfGuests int                `json:"numberOfGuests" validate:"min=1"`
	RoomID         string             `json:"roomId"         validate:"required"`
	RoomType       roomModel.RoomType `json:"roomType"       validate:"required,enum"`
	TotalPrice     *float64           `json:"totalPrice"     validate:"required,gte=0"`
}

// Validate checks the fields and that the stay ends after it starts.
func (c *CreateBookingRequest) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return failure.Summarize(err, invalidBookingMessage) // nolint:wrapcheck
	}

	checkIn, _ := timezone.ParseDate(c.CheckInDate)
	checkOut, _ := timezone.ParseDate(c.CheckOutDate)

	if !checkOut.After(checkIn) {
		return failure.Validation(invalidBookingMessage, map[string][]string{ // nolint:wrapcheck
			"checkOutDate": {checkOutBeforeMessage},
		})
	}

	return nil
}

// ToModel builds a new booking request. New bookings always start PENDING.
func (c *CreateBookingRequest) ToModel(now time.Time) model.BookingRequest {
	booking := model.BookingRequest{
		ID:             shared.NewID(model.IDPrefix),
		GuestName:      c.GuestName,
		GuestEmail:     c.GuestEmail,
		CheckInDate:    c.CheckInDate,
		CheckOutDate:   c.CheckOutDate,
		NumberOfGuests: c.NumberOfGuests,
		RoomType:       c.RoomType,
		RoomID:         c.RoomID,
		TotalPrice:     *c.TotalPrice,
		Status:         model.BookingStatusPending,
	}
	booking.Stamp(now)

	return booking
}

type UpdateBookingStatusRequest struct {
	Status model.BookingStatus `json:"status" validate:"required,enum"`
}

type BookingResponse struct {
	ID             string              `json:"id"`
	GuestName      string              `json:"guestName"`
	GuestEmail     string              `json:"guestEmail"`
	CheckInDate    string              `json:"checkInDate"`
	CheckOutDate   string              `json:"checkOutDate"`
	NumberOfGuests int                 `json:"numberOfGuests"`
	RoomType       roomModel.RoomType  `json:"roomType"`
	RoomID         string              `json:"roomId"`
	TotalPrice     float64             `json:"totalPrice"`
	Status         model.BookingStatus `json:"status"`
	gDto.Timestamps
}

func (r *BookingResponse) FromModel(model model.BookingRequest) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.NumberOfGuests = model.NumberOfGuests
	r.RoomType = model.RoomType
	r.RoomID = model.RoomID
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.BookingRequest) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
