package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/guestservice/model"
	gRepo "lavender/shared/repository"
)

type GuestService interface {
	Insert(ctx context.Context, model model.GuestServiceRequest) error
	Get(ctx context.Context, id string) (model.GuestServiceRequest, error)
	GetAll(ctx context.Context) []model.GuestServiceRequest
	Update(ctx context.Context, id string, mutate func(request *model.GuestServiceRequest) error) (model.GuestServiceRequest, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.GuestServiceRequest]
}

func New(store *appdata.Store, otel otel.Otel) GuestService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.GuestServiceRequest { return &doc.GuestServiceRequests },
			func(request model.GuestServiceRequest) string { return request.ID },
		),
	}
}
