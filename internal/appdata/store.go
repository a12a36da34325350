package appdata

import (
	"lavender/infras/otel"
	"lavender/infras/storage"
	"lavender/shared/document"
)

// Store is the document store every domain repository shares.
type Store = document.Store[Document]

func New(backend storage.Storage, otel otel.Otel) *Store {
	return document.New(backend, otel, Seed)
}
