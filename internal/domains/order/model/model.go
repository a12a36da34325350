package model

import (
	"lavender/shared/model"
)

const (
	EntityName = "Order"
	IDPrefix   = "order"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusPaid      OrderStatus = "Paid"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed, OrderStatusPaid:
		return true
	default:
		return false
	}
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// RestaurantOrder is placed for a table or, for room service, a room label.
type RestaurantOrder struct {
	ID          string      `json:"id"`
	TableNumber string      `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	TotalPrice  float64     `json:"totalPrice"`
	Status      OrderStatus `json:"status"`
	OrderTime   model.Time  `json:"orderTime"`
	model.Timestamps
}

// Total sums quantity times price over items.
func Total(items []OrderItem) float64 {
	total := 0.0

	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}

	return total
}
