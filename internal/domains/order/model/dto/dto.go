package dto

import (
	"lavender/internal/domains/order/model"
	"lavender/shared"
	gDto "lavender/shared/dto"
	gModel "lavender/shared/model"
	"time"
)

type OrderItemRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Quantity int      `json:"quantity" validate:"min=1"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
}

type CreateOrderRequest struct {
	TableNumber string             `json:"tableNumber" validate:"required"`
	Items       []OrderItemRequest `json:"items"       validate:"required,min=1,dive"`
	TotalPrice  *float64           `json:"totalPrice"  validate:"omitnil,gte=0"`
	Status      model.OrderStatus  `json:"status"      validate:"omitempty,enum"`
}

// ToModel builds a new order. Status defaults to Pending and the total to the sum of the items.
func (c *CreateOrderRequest) ToModel(now time.Time) model.RestaurantOrder {
	items := make([]model.OrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    *item.Price,
		}
	}

	order := model.RestaurantOrder{
		ID:          shared.NewID(model.IDPrefix),
		TableNumber: c.TableNumber,
		Items:       items,
		TotalPrice:  model.Total(items),
		Status:      model.OrderStatusPending,
		OrderTime:   gModel.At(now),
	}
	order.Stamp(now)

	if c.TotalPrice != nil {
		order.TotalPrice = *c.TotalPrice
	}

	if c.Status != "" {
		order.Status = c.Status
	}

	return order
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required,enum"`
}

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	TableNumber string              `json:"tableNumber"`
	Items       []OrderItemResponse `json:"items"`
	TotalPrice  float64             `json:"totalPrice"`
	Status      model.OrderStatus   `json:"status"`
	OrderTime   string              `json:"orderTime"`
	gDto.Timestamps
}

func (r *OrderResponse) FromModel(model model.RestaurantOrder) {
	r.ID = model.ID
	r.TableNumber = model.TableNumber
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.OrderTime = gDto.FormatTime(model.OrderTime)
	r.Timestamps.FromModel(model.Timestamps)

	r.Items = make([]OrderItemResponse, len(model.Items))
	for i, item := range model.Items {
		r.Items[i] = OrderItemResponse{Name: item.Name, Quantity: item.Quantity, Price: item.Price}
	}
}

func FromModels(models []model.RestaurantOrder) []OrderResponse {
	res := make([]OrderResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
