// Package appdata defines the single document every hotel record lives in.
package appdata

import (
	bookingModel "lavender/internal/domains/booking/model"
	guestServiceModel "lavender/internal/domains/guestservice/model"
	housekeepingModel "lavender/internal/domains/housekeeping/model"
	menuModel "lavender/internal/domains/menu/model"
	orderModel "lavender/internal/domains/order/model"
	roomModel "lavender/internal/domains/room/model"
	settingModel "lavender/internal/domains/setting/model"
)

// Document is persisted as one pretty printed JSON object.
type Document struct {
	Rooms                []roomModel.Room                        `json:"rooms"`
	BookingRequests      []bookingModel.BookingRequest           `json:"bookingRequests"`
	RestaurantOrders     []orderModel.RestaurantOrder            `json:"restaurantOrders"`
	MenuItems            []menuModel.MenuItem                    `json:"menuItems"`
	HousekeepingTasks    []housekeepingModel.HousekeepingTask    `json:"housekeepingTasks"`
	GuestServiceRequests []guestServiceModel.GuestServiceRequest `json:"guestServiceRequests"`
	HotelSettings        *settingModel.HotelSettings             `json:"hotelSettings"`
}

// Normalize replaces absent collections with empty ones so they are written as [] instead of null.
func (d *Document) Normalize() {
	if d.Rooms == nil {
		d.Rooms = []roomModel.Room{}
	}

	if d.BookingRequests == nil {
		d.BookingRequests = []bookingModel.BookingRequest{}
	}

	if d.RestaurantOrders == nil {
		d.RestaurantOrders = []orderModel.RestaurantOrder{}
	}

	if d.MenuItems == nil {
		d.MenuItems = []menuModel.MenuItem{}
	}

	if d.HousekeepingTasks == nil {
		d.HousekeepingTasks = []housekeepingModel.HousekeepingTask{}
	}

	if d.GuestServiceRequests == nil {
		d.GuestServiceRequests = []guestServiceModel.GuestServiceRequest{}
	}
}
