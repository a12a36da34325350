package model

import "lavender/shared/model"

const (
	EntityName = "Hotel settings"

	// SingletonID is the only id a HotelSettings record ever has.
	SingletonID = "singleton"
)

type HotelSettings struct {
	ID                   string `json:"id"`
	HotelName            string `json:"hotelName"`
	ContactEmail         string `json:"contactEmail"`
	ContactPhone         string `json:"contactPhone"`
	Address              string `json:"address"`
	EnableOnlineBookings bool   `json:"enableOnlineBookings"`
	CurrencySymbol       string `json:"currencySymbol"`
	model.Timestamps
}
