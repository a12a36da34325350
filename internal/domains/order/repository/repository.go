package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/order/model"
	gRepo "lavender/shared/repository"
)

type Order interface {
	Insert(ctx context.Context, model model.RestaurantOrder) error
	Get(ctx context.Context, id string) (model.RestaurantOrder, error)
	GetAll(ctx context.Context) []model.RestaurantOrder
	Update(ctx context.Context, id string, mutate func(order *model.RestaurantOrder) error) (model.RestaurantOrder, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.RestaurantOrder]
}

func New(store *appdata.Store, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.RestaurantOrder { return &doc.RestaurantOrders },
			func(order model.RestaurantOrder) string { return order.ID },
		),
	}
}
