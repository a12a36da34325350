package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lavender/infras/otel"
	"lavender/infras/postgres"
	"lavender/shared/constant"
)

const (
	queryReadDocument  = `SELECT content FROM app_documents WHERE name = $1`
	queryWriteDocument = `INSERT INTO app_documents (name, content, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`
)

type postgresStorage struct {
	db   *postgres.Connection
	name string
	otel otel.Otel
}

// NewPostgres stores the document as the row called name of table app_documents.
func NewPostgres(db *postgres.Connection, name string, ot otel.Otel) Storage {
	return &postgresStorage{
		db:   db,
		name: name,
		otel: ot,
	}
}

func (p *postgresStorage) Name() string {
	return constant.StoreBackendPostgres + ":" + p.name
}

func (p *postgresStorage) Read(ctx context.Context) (data []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var content []byte

	err = p.db.Read.GetContext(ctx, &content, queryReadDocument, p.name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", p.name, err)
	}

	return content, nil
}

func (p *postgresStorage) Write(ctx context.Context, data []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = p.db.Write.ExecContext(ctx, queryWriteDocument, p.name, string(data)); err != nil {
		return fmt.Errorf("failed to write document %s: %w", p.name, err)
	}

	return nil
}
