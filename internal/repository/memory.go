package repository

import (
	"context"
	"sync"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// InMemoryTodoRepository implements TodoRepository with an in-memory map.
// IDs are assigned from a monotonically increasing counter, like the
// autoincrement key of the SQLite implementation.
type InMemoryTodoRepository struct {
	todos  map[int64]model.Todo
	nextID int64
	mutex  sync.RWMutex
}

// NewInMemoryTodoRepository creates a new empty in-memory todo repository
func NewInMemoryTodoRepository() *InMemoryTodoRepository {
	return &InMemoryTodoRepository{
		todos:  make(map[int64]model.Todo),
		nextID: 1,
	}
}

// QueryAll returns every todo, soft-deleted ones included
func (r *InMemoryTodoRepository) QueryAll(ctx context.Context) ([]model.Todo, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	todos := make([]model.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}

	return todos, nil
}

// GetByID returns a specific todo by ID
func (r *InMemoryTodoRepository) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	todo, exists := r.todos[id]
	if !exists {
		return model.Todo{}, ErrTodoNotFound{ID: id}
	}

	return todo, nil
}

// Add stores a new todo, assigning its ID and initial version
func (r *InMemoryTodoRepository) Add(ctx context.Context, todo model.Todo) (model.Todo, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	todo.ID = r.nextID
	todo.Version = 1
	r.nextID++
	r.todos[todo.ID] = todo

	return todo, nil
}

// Save overwrites a previously-fetched todo, enforcing the version check
func (r *InMemoryTodoRepository) Save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.todos[todo.ID]
	if !exists {
		return model.Todo{}, ErrTodoNotFound{ID: todo.ID}
	}

	if existing.Version != todo.Version {
		return model.Todo{}, ErrTodoConflict{ID: todo.ID}
	}

	todo.Version++
	r.todos[todo.ID] = todo

	return todo, nil
}
