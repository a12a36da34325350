package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavender/config"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/internal/appdata"
	"lavender/internal/domains/order/model"
	"lavender/internal/domains/order/model/dto"
	"lavender/internal/domains/order/repository"
	"lavender/internal/domains/order/service"
	"lavender/shared/events"
	"lavender/shared/failure"
)

func newService(backend storage.Storage) service.Order {
	ot := mocks.NewOtel()
	store := appdata.New(backend, ot)

	return service.New(repository.New(store, ot), events.NewPublisher(&config.Config{}, ot), ot)
}

func ptr[T any](v T) *T {
	return &v
}

func validOrder() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		TableNumber: "T4",
		Items: []dto.OrderItemRequest{
			{Name: "Paneer Tikka", Quantity: 2, Price: ptr(350.0)},
			{Name: "Gulab Jamun", Quantity: 1, Price: ptr(150.0)},
		},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(storage.NewMemory(nil))

	order, err := svc.Create(ctx, validOrder())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.InDelta(t, 850.0, order.TotalPrice, 0.001)
	assert.NotEmpty(t, order.OrderTime)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	orders, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order, orders[0])
}

func TestOrderService_CreateKeepsGivenTotalAndStatus(t *testing.T) {
	req := validOrder()
	total := 700.0
	req.TotalPrice = &total
	req.Status = model.OrderStatusPreparing

	order, err := newService(storage.NewMemory(nil)).Create(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 700.0, order.TotalPrice, 0.001)
	assert.Equal(t, model.OrderStatusPreparing, order.Status)
}

func TestOrderService_CreateValidation(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name   string
		mutate func(req *dto.CreateOrderRequest)
		field  string
	}{
		{
			name:   "no items",
			mutate: func(req *dto.CreateOrderRequest) { req.Items = nil },
			field:  "items",
		},
		{
			name:   "zero quantity",
			mutate: func(req *dto.CreateOrderRequest) { req.Items[1].Quantity = 0 },
			field:  "items[1].quantity",
		},
		{
			name:   "item without price",
			mutate: func(req *dto.CreateOrderRequest) { req.Items[0].Price = nil },
			field:  "items[0].price",
		},
		{
			name:   "item with negative price",
			mutate: func(req *dto.CreateOrderRequest) { req.Items[0].Price = &negative },
			field:  "items[0].price",
		},
		{
			name:   "missing table",
			mutate: func(req *dto.CreateOrderRequest) { req.TableNumber = "" },
			field:  "tableNumber",
		},
		{
			name:   "negative total",
			mutate: func(req *dto.CreateOrderRequest) { req.TotalPrice = &negative },
			field:  "totalPrice",
		},
		{
			name:   "unknown status",
			mutate: func(req *dto.CreateOrderRequest) { req.Status = "Cooking" },
			field:  "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newService(storage.NewMemory(nil))

			req := validOrder()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			require.Error(t, err)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, "Invalid order data. Please check all fields.", err.Error())
			assert.Contains(t, failure.GetFields(err), tt.field)

			orders, _ := svc.GetAll(ctx)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderService_UpdateStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory(nil)
	svc := newService(backend)

	order, err := svc.Create(ctx, validOrder())
	require.NoError(t, err)

	served, err := svc.UpdateStatus(ctx, dto.UpdateOrderStatusRequest{Status: model.OrderStatusServed}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusServed, served.Status)

	reloaded, err := newService(backend).Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusServed, reloaded.Status)

	require.NoError(t, svc.Delete(ctx, order.ID))

	err = svc.Delete(ctx, order.ID)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Order with ID "+order.ID+" not found", failure.GetMessage(err))
}
