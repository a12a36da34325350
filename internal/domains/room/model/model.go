package model

import "lavender/shared/model"

const (
	EntityName = "Room"
	IDPrefix   = "room"

	// DefaultImageURL replaces an empty image URL on create and update.
	DefaultImageURL = "https://placehold.co/600x400.png"
)

type RoomType string

const (
	RoomTypeStandardTwin      RoomType = "STANDARD_TWIN"
	RoomTypeDeluxeQueen       RoomType = "DELUXE_QUEEN"
	RoomTypeLuxuryKingSuite   RoomType = "LUXURY_KING_SUITE"
	RoomTypeFamilySuite       RoomType = "FAMILY_SUITE"
	RoomTypeExecutiveSuite    RoomType = "EXECUTIVE_SUITE"
	RoomTypePresidentialSuite RoomType = "PRESIDENTIAL_SUITE"
)

func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeStandardTwin, RoomTypeDeluxeQueen, RoomTypeLuxuryKingSuite,
		RoomTypeFamilySuite, RoomTypeExecutiveSuite, RoomTypePresidentialSuite:
		return true
	default:
		return false
	}
}

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
	RoomStatusCleaning    RoomStatus = "CLEANING"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	default:
		return false
	}
}

type Room struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Type              RoomType   `json:"type"`
	PricePerNight     float64    `json:"pricePerNight"`
	Capacity          int        `json:"capacity"`
	Amenities         []string   `json:"amenities"`
	ImageURL          string     `json:"imageUrl"`
	ImageHint         string     `json:"data-ai-hint,omitempty"`
	AvailabilityScore int        `json:"availabilityScore"`
	Description       string     `json:"description"`
	Status            RoomStatus `json:"status"`
	model.Timestamps
}

// CanHost reports whether the room can currently be offered to a party of guests.
func (r Room) CanHost(guests int) bool {
	return r.Status == RoomStatusAvailable && r.Capacity >= guests
}
