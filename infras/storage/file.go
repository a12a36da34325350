package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"lavender/infras/otel"
	"lavender/shared/constant"
	"os"
	"path/filepath"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

type fileStorage struct {
	path string
	otel otel.Otel
}

// NewFile stores the document at path. Writes land in a temporary sibling first and are renamed
// into place, so a reader never observes a half written document.
func NewFile(path string, ot otel.Otel) Storage {
	return &fileStorage{
		path: path,
		otel: ot,
	}
}

func (f *fileStorage) Name() string {
	return constant.StoreBackendFile + ":" + f.path
}

func (f *fileStorage) Read(ctx context.Context) (data []byte, err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".file.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelStorageAttributeKey, f.path)

	data, err = os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	return data, nil
}

func (f *fileStorage) Write(ctx context.Context, data []byte) (err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".file.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelStorageAttributeKey, f.path)

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err = tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec

		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Chmod(tmpName, filePermission); err != nil {
		return fmt.Errorf("failed to set permission of temporary file: %w", err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	return nil
}
