package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// both implementations must behave identically, so the same suite runs
// against each
func repositoryImplementations(t *testing.T) map[string]func(t *testing.T) TodoRepository {
	t.Helper()

	return map[string]func(t *testing.T) TodoRepository{
		"memory": func(t *testing.T) TodoRepository {
			return NewInMemoryTodoRepository()
		},
		"sqlite": func(t *testing.T) TodoRepository {
			db, err := OpenDB(filepath.Join(t.TempDir(), "todos.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			return NewSQLiteTodoRepository(db)
		},
	}
}

func sampleTodo() model.Todo {
	submitted := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	return model.Todo{
		Title:         "Buy groceries",
		Content:       "Milk and eggs",
		Tag:           "personal",
		Status:        model.StatusPending,
		Priority:      model.PriorityMedium,
		SubmittedDate: submitted,
		CreatedDate:   submitted,
	}
}

func TestRepositoryAddAndGet(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			added, err := repo.Add(ctx, sampleTodo())
			require.NoError(t, err)

			assert.NotZero(t, added.ID)
			assert.Equal(t, int64(1), added.Version)

			got, err := repo.GetByID(ctx, added.ID)
			require.NoError(t, err)

			assert.Equal(t, added.ID, got.ID)
			assert.Equal(t, "Buy groceries", got.Title)
			assert.Equal(t, model.StatusPending, got.Status)
			assert.True(t, got.SubmittedDate.Equal(added.SubmittedDate))
			assert.Nil(t, got.CompletedDate)
			assert.Nil(t, got.DeletedDate)
		})
	}
}

func TestRepositoryGetMissing(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			_, err := repo.GetByID(ctx, 999)

			var notFound ErrTodoNotFound
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, int64(999), notFound.ID)
		})
	}
}

func TestRepositoryQueryAll(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			todos, err := repo.QueryAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, todos)

			for range 3 {
				_, err := repo.Add(ctx, sampleTodo())
				require.NoError(t, err)
			}

			todos, err = repo.QueryAll(ctx)
			require.NoError(t, err)
			assert.Len(t, todos, 3)
		})
	}
}

func TestRepositoryQueryAllIncludesDeleted(t *testing.T) {
	t.Parallel()

	// filtering soft-deleted items out is the caller's job, the store keeps
	// them visible
	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			added, err := repo.Add(ctx, sampleTodo())
			require.NoError(t, err)

			deleted := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
			added.DeletedDate = &deleted
			_, err = repo.Save(ctx, added)
			require.NoError(t, err)

			todos, err := repo.QueryAll(ctx)
			require.NoError(t, err)

			require.Len(t, todos, 1)
			assert.True(t, todos[0].Deleted())
		})
	}
}

func TestRepositorySave(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			added, err := repo.Add(ctx, sampleTodo())
			require.NoError(t, err)

			added.Title = "Buy more groceries"
			added.Status = model.StatusCompleted
			completed := time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)
			added.CompletedDate = &completed

			saved, err := repo.Save(ctx, added)
			require.NoError(t, err)
			assert.Equal(t, int64(2), saved.Version)

			got, err := repo.GetByID(ctx, added.ID)
			require.NoError(t, err)

			assert.Equal(t, "Buy more groceries", got.Title)
			assert.Equal(t, model.StatusCompleted, got.Status)
			require.NotNil(t, got.CompletedDate)
			assert.True(t, got.CompletedDate.Equal(completed))
			assert.Equal(t, int64(2), got.Version)
		})
	}
}

func TestRepositorySaveMissing(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			ghost := sampleTodo()
			ghost.ID = 42
			ghost.Version = 1

			_, err := repo.Save(ctx, ghost)

			var notFound ErrTodoNotFound
			require.True(t, errors.As(err, &notFound))
		})
	}
}

func TestRepositorySaveStaleVersion(t *testing.T) {
	t.Parallel()

	for name, newRepo := range repositoryImplementations(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			repo := newRepo(t)

			added, err := repo.Add(ctx, sampleTodo())
			require.NoError(t, err)

			// two readers fetch the same version, the slower write loses
			first := added
			second := added

			first.Title = "first writer"
			_, err = repo.Save(ctx, first)
			require.NoError(t, err)

			second.Title = "second writer"
			_, err = repo.Save(ctx, second)

			var conflict ErrTodoConflict
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, added.ID, conflict.ID)

			got, err := repo.GetByID(ctx, added.ID)
			require.NoError(t, err)
			assert.Equal(t, "first writer", got.Title)
		})
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewInMemoryTodoRepository()

	n, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	todos, err := repo.QueryAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 15)

	for _, todo := range todos {
		assert.NotEmpty(t, todo.Title)
		assert.Contains(t, model.Statuses, todo.Status)
		assert.Contains(t, model.Priorities, todo.Priority)

		switch todo.Status {
		case model.StatusCompleted:
			assert.NotNil(t, todo.CompletedDate, "completed item %q must carry a completion date", todo.Title)
		case model.StatusCancelled:
			assert.NotNil(t, todo.CancelledDate, "cancelled item %q must carry a cancellation date", todo.Title)
		}
	}

	// a second run must leave the data alone
	n, err = Seed(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	todos, err = repo.QueryAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 15)
}
