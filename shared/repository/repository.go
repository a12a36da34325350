package repository

import (
	"context"
	"fmt"
	"lavender/infras/otel"
	"lavender/shared/constant"
	"lavender/shared/document"
	"lavender/shared/failure"
	"slices"
)

// Repository is a collection of records of type T kept inside document D.
type Repository[D, T any] struct {
	engine     *document.Store[D]
	otel       otel.Otel
	entitas    string
	collection func(doc *D) *[]T
	key        func(record T) string
}

// NewRepository binds a collection of the document to an entity. entitasName is used in not found
// messages ("<entitasName> with ID <id> not found").
func NewRepository[D, T any](
	entitasName string,
	engine *document.Store[D],
	otl otel.Otel,
	collection func(doc *D) *[]T,
	key func(record T) string,
) Repository[D, T] {
	return Repository[D, T]{
		engine:     engine,
		otel:       otl,
		entitas:    entitasName,
		collection: collection,
		key:        key,
	}
}

func (repo *Repository[D, T]) scopeName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

func (repo *Repository[D, T]) notFound(id string) error {
	return failure.NotFound(fmt.Sprintf("%s with ID %s not found", repo.entitas, id))
}

func (repo *Repository[D, T]) records(doc *D) []T {
	records := repo.collection(doc)
	if *records == nil {
		*records = []T{}
	}

	return *records
}

func (repo *Repository[D, T]) indexOf(records []T, id string) int {
	return slices.IndexFunc(records, func(record T) bool {
		return repo.key(record) == id
	})
}

// GetAll returns every record in insertion order. It never returns nil.
func (repo *Repository[D, T]) GetAll(ctx context.Context) []T {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAll"))
	defer scope.End()

	doc := repo.engine.Read(ctx)

	return repo.records(&doc)
}

// Find returns the records accepted by match, in insertion order.
func (repo *Repository[D, T]) Find(ctx context.Context, match func(record T) bool) []T {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Find"))
	defer scope.End()

	result := []T{}

	for _, record := range repo.GetAll(ctx) {
		if match(record) {
			result = append(result, record)
		}
	}

	return result
}

// Get returns the first record whose id matches.
func (repo *Repository[D, T]) Get(ctx context.Context, id string) (record T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	records := repo.GetAll(ctx)

	idx := repo.indexOf(records, id)
	if idx < 0 {
		return record, repo.notFound(id)
	}

	return records[idx], nil
}

func (repo *Repository[D, T]) Exist(ctx context.Context, id string) bool {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Exist"))
	defer scope.End()

	return repo.indexOf(repo.GetAll(ctx), id) >= 0
}

func (repo *Repository[D, T]) Count(ctx context.Context) int {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Count"))
	defer scope.End()

	return len(repo.GetAll(ctx))
}

// Insert appends record to the collection. A record with the same id already present is a conflict.
func (repo *Repository[D, T]) Insert(ctx context.Context, record T) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := repo.key(record)
	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	return repo.engine.Mutate(ctx, func(doc *D) error { //nolint:wrapcheck
		records := repo.records(doc)

		if repo.indexOf(records, id) >= 0 {
			return failure.Conflict(fmt.Sprintf("%s with ID %s already exists", repo.entitas, id))
		}

		*repo.collection(doc) = append(records, record)

		return nil
	})
}

// Update applies mutate to the first record whose id matches and persists the result.
// When mutate fails nothing is written.
func (repo *Repository[D, T]) Update(ctx context.Context, id string, mutate func(record *T) error) (updated T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	err = repo.engine.Mutate(ctx, func(doc *D) error {
		records := repo.records(doc)

		idx := repo.indexOf(records, id)
		if idx < 0 {
			return repo.notFound(id)
		}

		if err := mutate(&records[idx]); err != nil {
			return err
		}

		updated = records[idx]

		return nil
	})

	return updated, err //nolint:wrapcheck
}

// Delete removes the first record whose id matches, keeping the order of the others.
func (repo *Repository[D, T]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	return repo.engine.Mutate(ctx, func(doc *D) error { //nolint:wrapcheck
		records := repo.records(doc)

		idx := repo.indexOf(records, id)
		if idx < 0 {
			return repo.notFound(id)
		}

		*repo.collection(doc) = slices.Delete(records, idx, idx+1)

		return nil
	})
}
