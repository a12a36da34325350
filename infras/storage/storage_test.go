package storage_test

import (
	"context"
	"errors"
	"lavender/config"
	"lavender/infras/otel/mocks"
	"lavender/infras/s3"
	s3Mocks "lavender/infras/s3/mocks"
	"lavender/infras/storage"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	store := storage.NewFile(path, mocks.NewOtel())

	_, err := store.Read(ctx)
	assert.ErrorIs(t, err, storage.ErrNotExist)

	require.NoError(t, store.Write(ctx, []byte(`{"rooms":[]}`)))

	data, err := store.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rooms":[]}`, string(data))

	require.NoError(t, store.Write(ctx, []byte(`{"rooms":[{"id":"1"}]}`)))

	data, err = store.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rooms":[{"id":"1"}]}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStorageWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := storage.NewFile(filepath.Join(blocker, "data.json"), mocks.NewOtel())

	err := store.Write(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()

	empty := storage.NewMemory(nil)
	_, err := empty.Read(ctx)
	assert.ErrorIs(t, err, storage.ErrNotExist)

	seeded := storage.NewMemory([]byte(`{"a":1}`))
	data, err := seeded.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, seeded.Write(ctx, []byte(`{"a":2}`)))
	assert.Equal(t, 1, seeded.Writes())
	assert.Equal(t, `{"a":2}`, string(seeded.Bytes()))

	seeded.FailWrites = errors.New("disk full")
	assert.Error(t, seeded.Write(ctx, []byte(`{"a":3}`)))
	assert.Equal(t, `{"a":2}`, string(seeded.Bytes()))
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := s3Mocks.NewMockS3(ctrl)

	store := storage.NewS3(client, "bucket", "lavender/data.json", mocks.NewOtel())

	t.Run("missing object", func(t *testing.T) {
		client.EXPECT().GetObject(gomock.Any(), "bucket", "lavender/data.json").Return(nil, s3.ErrObjectNotFound)

		_, err := store.Read(ctx)
		assert.ErrorIs(t, err, storage.ErrNotExist)
	})

	t.Run("read object", func(t *testing.T) {
		client.EXPECT().GetObject(gomock.Any(), "bucket", "lavender/data.json").Return([]byte(`{}`), nil)

		data, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("write object", func(t *testing.T) {
		client.EXPECT().PutObject(gomock.Any(), "bucket", "lavender/data.json", "application/json", []byte(`{}`)).Return(nil)

		assert.NoError(t, store.Write(ctx, []byte(`{}`)))
	})

	t.Run("write failure", func(t *testing.T) {
		client.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("denied"))

		assert.Error(t, store.Write(ctx, []byte(`{}`)))
	})
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	cfg.Store.Backend = "memory"
	store, err := storage.New(cfg, mocks.NewOtel())
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Name())

	cfg.Store.Backend = "file"
	cfg.Store.FilePath = filepath.Join(t.TempDir(), "data.json")
	store, err = storage.New(cfg, mocks.NewOtel())
	require.NoError(t, err)
	assert.Contains(t, store.Name(), "data.json")

	cfg.Store.Backend = "floppy"
	_, err = storage.New(cfg, mocks.NewOtel())
	assert.Error(t, err)
}
