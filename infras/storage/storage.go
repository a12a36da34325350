// Package storage holds the backends a whole JSON document can be persisted to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"lavender/config"
	"lavender/infras/otel"
	"lavender/infras/postgres"
	"lavender/infras/s3"
	"lavender/shared/constant"

	"github.com/rs/zerolog/log"
)

// ErrNotExist is returned by Read when nothing has been written yet.
var ErrNotExist = errors.New("document does not exist")

// Storage reads and writes a single document as a whole.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Name() string
}

// New builds the backend selected by STORE_BACKEND.
func New(cfg *config.Config, ot otel.Otel) (Storage, error) {
	backend := cfg.Store.Backend

	log.Info().Str(constant.OtelStorageAttributeKey, backend).Msg("Initializing document storage")

	switch backend {
	case constant.StoreBackendFile, constant.Empty:
		return NewFile(cfg.Store.FilePath, ot), nil
	case constant.StoreBackendMemory:
		return NewMemory(nil), nil
	case constant.StoreBackendS3:
		return NewS3(s3.New(cfg, ot), cfg.External.S3.BucketName, cfg.Store.S3Key, ot), nil
	case constant.StoreBackendPostgres:
		conn := postgres.New(cfg)
		if conn.Read == nil || conn.Write == nil {
			return nil, errors.New("failed to connect to postgres document storage")
		}

		return NewPostgres(conn, cfg.Store.Document, ot), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}
