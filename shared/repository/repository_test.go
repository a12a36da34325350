package repository_test

import (
	"context"
	"errors"
	"lavender/infras/otel/mocks"
	"lavender/infras/storage"
	"lavender/shared/document"
	"lavender/shared/failure"
	"lavender/shared/repository"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type shelf struct {
	Widgets []widget `json:"widgets"`
}

func newRepository(initial string) (repository.Repository[shelf, widget], *storage.Memory) {
	backend := storage.NewMemory([]byte(initial))
	engine := document.New(backend, mocks.NewOtel(), func() shelf { return shelf{} })

	repo := repository.NewRepository(
		"Widget",
		engine,
		mocks.NewOtel(),
		func(doc *shelf) *[]widget { return &doc.Widgets },
		func(w widget) string { return w.ID },
	)

	return repo, backend
}

const twoWidgets = `{"widgets":[{"id":"a","name":"first"},{"id":"b","name":"second"}]}`

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	repo, _ := newRepository(`{}`)
	all := repo.GetAll(ctx)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	repo, _ = newRepository(twoWidgets)
	assert.Equal(t, []widget{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}, repo.GetAll(ctx))
	assert.Equal(t, 2, repo.Count(ctx))
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(twoWidgets)

	tests := []struct {
		name         string
		id           string
		expected     widget
		expectedCode int
	}{
		{
			name:     "existing record",
			id:       "b",
			expected: widget{ID: "b", Name: "second"},
		},
		{
			name:         "unknown record",
			id:           "nonexistent-id",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.Get(ctx, tt.id)

			if tt.expectedCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				assert.Equal(t, "Widget with ID nonexistent-id not found", err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	assert.True(t, repo.Exist(ctx, "a"))
	assert.False(t, repo.Exist(ctx, "z"))
}

func TestRepository_Find(t *testing.T) {
	repo, _ := newRepository(twoWidgets)

	result := repo.Find(context.Background(), func(w widget) bool { return w.Name == "second" })

	assert.Equal(t, []widget{{ID: "b", Name: "second"}}, result)
}

func TestRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(twoWidgets)

	require.NoError(t, repo.Insert(ctx, widget{ID: "c", Name: "third"}))

	all := repo.GetAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[2].ID)

	err := repo.Insert(ctx, widget{ID: "a", Name: "again"})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Len(t, repo.GetAll(ctx), 3)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates in place", func(t *testing.T) {
		repo, _ := newRepository(twoWidgets)

		updated, err := repo.Update(ctx, "a", func(w *widget) error {
			w.Name = "renamed"

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)

		all := repo.GetAll(ctx)
		assert.Equal(t, []widget{{ID: "a", Name: "renamed"}, {ID: "b", Name: "second"}}, all)
	})

	t.Run("unknown id leaves collection untouched", func(t *testing.T) {
		repo, backend := newRepository(twoWidgets)

		_, err := repo.Update(ctx, "z", func(*widget) error { return nil })

		assert.True(t, failure.IsNotFound(err))
		assert.Equal(t, 0, backend.Writes())
	})

	t.Run("mutation failure skips the write", func(t *testing.T) {
		repo, backend := newRepository(twoWidgets)
		boom := errors.New("boom")

		_, err := repo.Update(ctx, "a", func(w *widget) error {
			w.Name = "changed"

			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, backend.Writes())
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, backend := newRepository(`{"widgets":[{"id":"a"},{"id":"b"},{"id":"c"}]}`)

	require.NoError(t, repo.Delete(ctx, "b"))
	assert.Equal(t, []widget{{ID: "a"}, {ID: "c"}}, repo.GetAll(ctx))

	err := repo.Delete(ctx, "b")
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, 1, backend.Writes())
}

func TestRepository_TracesErrors(t *testing.T) {
	ctx := context.Background()
	recorder := mocks.NewRecorder()
	backend := storage.NewMemory([]byte(`{"widgets":[{"id":"w1","name":"first"}]}`))
	engine := document.New(backend, recorder, func() shelf { return shelf{} })

	repo := repository.NewRepository(
		"Widget",
		engine,
		recorder,
		func(doc *shelf) *[]widget { return &doc.Widgets },
		func(w widget) string { return w.ID },
	)

	_, err := repo.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, recorder.Errors())

	_, err = repo.Get(ctx, "missing")
	require.Error(t, err)
	require.Len(t, recorder.Errors(), 1)
	assert.True(t, failure.IsNotFound(recorder.Errors()[0]))

	backend.FailWrites = errors.New("disk full")

	err = repo.Insert(ctx, widget{ID: "w2"})
	require.Error(t, err)

	// Both the engine and the repository scope record the failed write.
	traced := recorder.Errors()
	require.Len(t, traced, 3)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(traced[1]))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(traced[2]))
}
