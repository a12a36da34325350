package appdata

import (
	bookingModel "lavender/internal/domains/booking/model"
	roomModel "lavender/internal/domains/room/model"
	settingModel "lavender/internal/domains/setting/model"
	"lavender/shared/model"
	"lavender/shared/timezone"
	"time"
)

// DefaultHotelSettings returns the settings used until an operator saves their own.
func DefaultHotelSettings(now time.Time) settingModel.HotelSettings {
	return settingModel.HotelSettings{
		ID:                   settingModel.SingletonID,
		HotelName:            "Lavender Luxury Hotel",
		ContactEmail:         "contact@lavenderluxury.com",
		ContactPhone:         "+91 98765 43210",
		Address:              "123 Lavender Lane, Paradise City, India",
		EnableOnlineBookings: true,
		CurrencySymbol:       "₹",
		Timestamps:           stamped(now),
	}
}

// Seed builds the document written when storage holds none.
func Seed() Document {
	now := timezone.Now()
	settings := DefaultHotelSettings(now)

	doc := Document{
		Rooms:           seedRooms(now),
		BookingRequests: seedBookings(now),
		HotelSettings:   &settings,
	}
	doc.Normalize()

	return doc
}

func stamped(now time.Time) model.Timestamps {
	return model.Timestamps{CreatedAt: model.At(now), UpdatedAt: model.At(now)}
}

func seedRooms(now time.Time) []roomModel.Room {
	return []roomModel.Room{
		{
			ID:                "1",
			Name:              "Deluxe Queen Serenity",
			Type:              roomModel.RoomTypeDeluxeQueen,
			PricePerNight:     18000,
			Capacity:          2,
			Amenities:         []string{"WiFi", "Air Conditioning", "HD TV", "Rain Shower"},
			ImageURL:          roomModel.DefaultImageURL,
			ImageHint:         "modern bedroom",
			AvailabilityScore: 75,
			Description:       "A beautifully appointed room with a queen-size bed, perfect for couples or solo travelers seeking comfort and style.",
			Status:            roomModel.RoomStatusAvailable,
			Timestamps:        stamped(now),
		},
		{
			ID:                "2",
			Name:              "Luxury King Panorama Suite",
			Type:              roomModel.RoomTypeLuxuryKingSuite,
			PricePerNight:     32000,
			Capacity:          3,
			Amenities:         []string{"WiFi", "Air Conditioning", "HD TV", "Mini Bar", "Jacuzzi Tub", "City View"},
			ImageURL:          roomModel.DefaultImageURL,
			ImageHint:         "luxury suite",
			AvailabilityScore: 45,
			Description:       "Experience ultimate luxury in our King Suite, featuring a spacious layout, premium amenities, and breathtaking panoramic views.",
			Status:            roomModel.RoomStatusOccupied,
			Timestamps:        stamped(now),
		},
		{
			ID:                "3",
			Name:              "Standard Twin Comfort",
			Type:              roomModel.RoomTypeStandardTwin,
			PricePerNight:     15000,
			Capacity:          2,
			Amenities:         []string{"WiFi", "Air Conditioning", "Work Desk"},
			ImageURL:          roomModel.DefaultImageURL,
			ImageHint:         "twin beds",
			AvailabilityScore: 90,
			Description:       "Ideal for friends or colleagues, this room offers two comfortable twin beds and all essential amenities for a pleasant stay.",
			Status:            roomModel.RoomStatusMaintenance,
			Timestamps:        stamped(now),
		},
		{
			ID:                "4",
			Name:              "Family Garden Retreat",
			Type:              roomModel.RoomTypeFamilySuite,
			PricePerNight:     28000,
			Capacity:          4,
			Amenities:         []string{"WiFi", "Air Conditioning", "HD TV", "Kitchenette", "Balcony"},
			ImageURL:          roomModel.DefaultImageURL,
			ImageHint:         "family room",
			AvailabilityScore: 60,
			Description:       "Spacious and welcoming, our Family Suite provides ample space and comfort for families, with an added kitchenette and private balcony.",
			Status:            roomModel.RoomStatusAvailable,
			Timestamps:        stamped(now),
		},
	}
}

func seedBookings(now time.Time) []bookingModel.BookingRequest {
	return []bookingModel.BookingRequest{
		{
			ID:             "B001",
			GuestName:      "Alice Wonderland",
			GuestEmail:     "alice@example.com",
			CheckInDate:    "2024-09-10",
			CheckOutDate:   "2024-09-12",
			NumberOfGuests: 2,
			RoomType:       roomModel.RoomTypeDeluxeQueen,
			RoomID:         "1",
			TotalPrice:     36000,
			Status:         bookingModel.BookingStatusPending,
			Timestamps:     stamped(now),
		},
		{
			ID:             "B002",
			GuestName:      "Bob The Builder",
			GuestEmail:     "bob@example.com",
			CheckInDate:    "2024-09-15",
			CheckOutDate:   "2024-09-18",
			NumberOfGuests: 1,
			RoomType:       roomModel.RoomTypeLuxuryKingSuite,
			RoomID:         "2",
			TotalPrice:     96000,
			Status:         bookingModel.BookingStatusPending,
			Timestamps:     stamped(now),
		},
		{
			ID:             "B003",
			GuestName:      "Charlie Chaplin",
			GuestEmail:     "charlie@example.com",
			CheckInDate:    "2024-08-20",
			CheckOutDate:   "2024-08-22",
			NumberOfGuests: 2,
			RoomType:       roomModel.RoomTypeStandardTwin,
			RoomID:         "3",
			TotalPrice:     30000,
			Status:         bookingModel.BookingStatusConfirmed,
			Timestamps:     stamped(now),
		},
		{
			ID:             "B004",
			GuestName:      "Diana Prince",
			GuestEmail:     "diana@example.com",
			CheckInDate:    "2024-10-01",
			CheckOutDate:   "2024-10-05",
			NumberOfGuests: 4,
			RoomType:       roomModel.RoomTypeFamilySuite,
			RoomID:         "4",
			TotalPrice:     112000,
			Status:         bookingModel.BookingStatusPending,
			Timestamps:     stamped(now),
		},
	}
}
