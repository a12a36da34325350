package repository

import (
	"context"
	"lavender/infras/otel"
	"lavender/internal/appdata"
	"lavender/internal/domains/setting/model"
	"lavender/shared/constant"
)

type Setting interface {
	// Get returns the stored settings, or nil when the document holds none.
	Get(ctx context.Context) *model.HotelSettings
	// Save replaces the settings with the value built by fn from the current one (nil when absent).
	Save(ctx context.Context, fn func(current *model.HotelSettings) (model.HotelSettings, error)) (model.HotelSettings, error)
}

type repositoryImpl struct {
	store *appdata.Store
	otel  otel.Otel
}

func New(store *appdata.Store, otel otel.Otel) Setting {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context) *model.HotelSettings {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setting.Get")
	defer scope.End()

	doc := r.store.Read(ctx)
	if doc.HotelSettings == nil || doc.HotelSettings.ID != model.SingletonID {
		return nil
	}

	return doc.HotelSettings
}

func (r *repositoryImpl) Save(
	ctx context.Context,
	fn func(current *model.HotelSettings) (model.HotelSettings, error),
) (saved model.HotelSettings, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setting.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.store.Mutate(ctx, func(doc *appdata.Document) error {
		current := doc.HotelSettings
		if current != nil && current.ID != model.SingletonID {
			current = nil
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		next.ID = model.SingletonID
		doc.HotelSettings = &next
		saved = next

		return nil
	})

	return saved, err //nolint:wrapcheck
}
