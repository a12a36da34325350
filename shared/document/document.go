// Package document keeps a whole JSON document in a storage backend and applies
// read-modify-write mutations to it.
//
// Every Read goes back to storage; nothing is cached between operations. Mutations made through
// one Store are serialized, so concurrent writers in a process never lose each other's changes.
// Writers in other processes are not coordinated.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lavender/infras/otel"
	"lavender/infras/storage"
	"lavender/shared/constant"
	"lavender/shared/failure"
	"sync"

	"github.com/rs/zerolog/log"
)

const indent = "  "

var (
	// ErrNoChange can be returned by a mutation to skip the write.
	ErrNoChange = errors.New("document unchanged")
	// ErrSchemaMismatch marks stored content that is valid JSON but cannot be decoded into the document type.
	ErrSchemaMismatch = errors.New("document does not match its schema")
)

// Normalizer is implemented by documents that need fixing up after being decoded,
// such as replacing absent collections with empty ones.
type Normalizer interface {
	Normalize()
}

type Store[D any] struct {
	storage storage.Storage
	otel    otel.Otel
	seed    func() D
	mu      sync.Mutex
}

// New returns a store over backend. seed builds the document used when storage holds nothing usable.
func New[D any](backend storage.Storage, ot otel.Otel, seed func() D) *Store[D] {
	return &Store[D]{
		storage: backend,
		otel:    ot,
		seed:    seed,
	}
}

// Read returns the current document. It never fails: a missing document is seeded and persisted,
// unreadable or malformed content is logged and replaced by the seed for this call only.
func (s *Store[D]) Read(ctx context.Context) D {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Read")
	defer scope.End()

	doc, err := s.load(ctx)
	if errors.Is(err, storage.ErrNotExist) {
		doc, err = s.seedMissing(ctx)
	}

	if err != nil {
		scope.TraceError(err)
	}

	return doc
}

// Mutate reads the document, applies fn and writes the result back. When fn fails nothing is
// written and its error is returned as is. Storage failures are reported as failure.StorageError
// and leave the stored document untouched. Stored content that is valid JSON but does not decode
// into D is never overwritten.
func (s *Store[D]) Mutate(ctx context.Context, fn func(doc *D) error) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Mutate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)

	switch {
	case errors.Is(err, storage.ErrNotExist):
		doc = s.writeSeed(ctx)
	case errors.Is(err, ErrSchemaMismatch):
		return failure.StorageError(err)
	}

	if err = fn(&doc); err != nil {
		if errors.Is(err, ErrNoChange) {
			return nil
		}

		return err
	}

	return s.write(ctx, doc)
}

// Reset replaces the stored document with the seed.
func (s *Store[D]) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, s.seed())
}

// seedMissing persists the seed unless the document was created since it was found missing.
func (s *Store[D]) seedMissing(ctx context.Context) (D, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if !errors.Is(err, storage.ErrNotExist) {
		return doc, err
	}

	return s.writeSeed(ctx), nil
}

// writeSeed writes and returns the seed. The caller holds s.mu.
func (s *Store[D]) writeSeed(ctx context.Context) D {
	doc := s.seed()

	log.Info().Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("Document not found, writing seed data")

	if err := s.write(ctx, doc); err != nil {
		log.Error().Err(err).Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("failed to persist seed document")
	}

	return doc
}

// load reads and decodes the stored document. On any error the seed is returned with it. A missing
// document yields storage.ErrNotExist and nothing is written.
func (s *Store[D]) load(ctx context.Context) (D, error) {
	data, err := s.storage.Read(ctx)

	if errors.Is(err, storage.ErrNotExist) {
		return s.seed(), err //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("failed to read document, using seed data")

		return s.seed(), fmt.Errorf("failed to read document: %w", err)
	}

	var doc D

	if err = json.Unmarshal(data, &doc); err != nil {
		if json.Valid(data) {
			log.Error().Err(err).Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("document does not match its schema, using seed data")

			return s.seed(), fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}

		log.Warn().Err(err).Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("document is not valid JSON, using seed data")

		return s.seed(), fmt.Errorf("failed to decode document: %w", err)
	}

	if normalizer, ok := any(&doc).(Normalizer); ok {
		normalizer.Normalize()
	}

	return doc, nil
}

func (s *Store[D]) write(ctx context.Context, doc D) error {
	if normalizer, ok := any(&doc).(Normalizer); ok {
		normalizer.Normalize()
	}

	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode document")

		return failure.StorageError(fmt.Errorf("failed to encode document: %w", err))
	}

	if err = s.storage.Write(ctx, data); err != nil {
		log.Error().Err(err).Str(constant.OtelStorageAttributeKey, s.storage.Name()).Msg("failed to write document")

		return failure.StorageError(err)
	}

	return nil
}
