package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/menu/model"
	gRepo "lavender/shared/repository"
)

type Menu interface {
	Insert(ctx context.Context, model model.MenuItem) error
	Get(ctx context.Context, id string) (model.MenuItem, error)
	Find(ctx context.Context, match func(item model.MenuItem) bool) []model.MenuItem
	Update(ctx context.Context, id string, mutate func(item *model.MenuItem) error) (model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[appdata.Document, model.MenuItem]
}

func New(store *appdata.Store, otel otel.Otel) Menu {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(
			model.EntityName,
			store,
			otel,
			func(doc *appdata.Document) *[]model.MenuItem { return &doc.MenuItems },
			func(item model.MenuItem) string { return item.ID },
		),
	}
}
