package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/housekeeping/model"
	gRepo "lavender/shared/repository"
)

type Housekeeping interface {
	Insert(ctx context.Context, model model.HousekeepingTask) error
	Get(ctx context.Context, id string) (model.HousekeepingTask, error)
	GetAll(ctx context.Context) []model.HousekeepingTask
	Update(ctx context.Context, id string, mutate func(task *model.HousekeepingTask) error) (model.HousekeepingTask, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.HousekeepingTask]
}

func New(store *appdata.Store, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.HousekeepingTask { return &doc.HousekeepingTasks },
			func(task model.HousekeepingTask) string { return task.ID },
		),
	}
}
