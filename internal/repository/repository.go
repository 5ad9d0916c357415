// package repository provides data access interfaces and implementations
package repository

import (
	"context"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// TodoRepository defines the interface for todo data access. Soft-deleted
// rows are regular rows here; filtering them out is the service's job.
type TodoRepository interface {
	// QueryAll returns every todo, live and soft-deleted, in no particular order
	QueryAll(ctx context.Context) ([]model.Todo, error)

	// GetByID returns a specific todo by ID, or ErrTodoNotFound
	GetByID(ctx context.Context, id int64) (model.Todo, error)

	// Add stores a new todo, assigning its ID and initial version
	Add(ctx context.Context, todo model.Todo) (model.Todo, error)

	// Save overwrites a previously-fetched todo. It fails with
	// ErrTodoConflict when the stored version no longer matches the one the
	// caller fetched, and with ErrTodoNotFound when the row is gone.
	Save(ctx context.Context, todo model.Todo) (model.Todo, error)
}
