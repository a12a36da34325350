package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/room/model"
	gRepo "lavender/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context) []model.Room
	Find(ctx context.Context, match func(room model.Room) bool) []model.Room
	Exist(ctx context.Context, id string) bool
	Count(ctx context.Context) int
	Update(ctx context.Context, id string, mutate func(room *model.Room) error) (model.Room, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.Room]
}

func New(store *appdata.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.Room { return &doc.Rooms },
			func(room model.Room) string { return room.ID },
		),
	}
}
