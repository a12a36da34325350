package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/booking/model"
	gRepo "lavender/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.BookingRequest) error
	Get(ctx context.Context, id string) (model.BookingRequest, error)
	GetAll(ctx context.Context) []model.BookingRequest
	Update(ctx context.Context, id string, mutate func(booking *model.BookingRequest) error) (model.BookingRequest, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.BookingRequest]
}

func New(store *appdata.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.BookingRequest { return &doc.BookingRequests },
			func(booking model.BookingRequest) string { return booking.ID },
		),
	}
}
