package dto

import (
	"lavender/internal/domains/setting/model"
	gDto "lavender/shared/dto"
)

type UpdateSettingsRequest struct {
	HotelName            string `json:"hotelName"            validate:"required,min=3"`
	ContactEmail         string `json:"contactEmail"         validate:"required,email"`
	ContactPhone         string `json:"contactPhone"         validate:"required,min=10"`
	Address              string `json:"address"              validate:"required,min=10"`
	EnableOnlineBookings bool   `json:"enableOnlineBookings"`
	CurrencySymbol       string `json:"currencySymbol"       validate:"required,len=1"`
}

// ApplyTo copies the editable fields onto settings. Identity and timestamps are left alone.
func (u *UpdateSettingsRequest) ApplyTo(settings *model.HotelSettings) {
	settings.HotelName = u.HotelName
	settings.ContactEmail = u.ContactEmail
	settings.ContactPhone = u.ContactPhone
	settings.Address = u.Address
	settings.EnableOnlineBookings = u.EnableOnlineBookings
	settings.CurrencySymbol = u.CurrencySymbol
}

type SettingsResponse struct {
	ID                   string `json:"id"`
	HotelName            string `json:"hotelName"`
	ContactEmail         string `json:"contactEmail"`
	ContactPhone         string `json:"contactPhone"`
	Address              string `json:"address"`
	EnableOnlineBookings bool   `json:"enableOnlineBookings"`
	CurrencySymbol       string `json:"currencySymbol"`
	gDto.Timestamps
}

func (r *SettingsResponse) FromModel(model model.HotelSettings) {
	r.ID = model.ID
	r.HotelName = model.HotelName
	r.ContactEmail = model.ContactEmail
	r.ContactPhone = model.ContactPhone
	r.Address = model.Address
	r.EnableOnlineBookings = model.EnableOnlineBookings
	r.CurrencySymbol = model.CurrencySymbol
	r.Timestamps.FromModel(model.Timestamps)
}
