package storage

import (
	"context"
	"errors"
	"fmt"
	"lavender/infras/otel"
	"lavender/infras/s3"
	"lavender/shared/constant"
)

type s3Storage struct {
	client s3.S3
	bucket string
	key    string
	otel   otel.Otel
}

// NewS3 stores the document as one object in bucket.
func NewS3(client s3.S3, bucket, key string, ot otel.Otel) Storage {
	return &s3Storage{
		client: client,
		bucket: bucket,
		key:    key,
		otel:   ot,
	}
}

func (s *s3Storage) Name() string {
	return fmt.Sprintf("%s:%s/%s", constant.StoreBackendS3, s.bucket, s.key)
}

func (s *s3Storage) Read(ctx context.Context) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".s3.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err = s.client.GetObject(ctx, s.bucket, s.key)
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, ErrNotExist
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read document object: %w", err)
	}

	return data, nil
}

func (s *s3Storage) Write(ctx context.Context, data []byte) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".s3.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.client.PutObject(ctx, s.bucket, s.key, constant.ContentTypeJSON, data); err != nil {
		return fmt.Errorf("failed to write document object: %w", err)
	}

	return nil
}
