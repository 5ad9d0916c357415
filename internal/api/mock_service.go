package api

import (
	"context"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// MockTodoService is a mock implementation of TodoService that does nothing
// and is used solely for OpenAPI documentation generation
type MockTodoService struct{}

// NewMockTodoService creates a new mock todo service
func NewMockTodoService() *MockTodoService {
	return &MockTodoService{}
}

// ListTodos implements TodoService
func (s *MockTodoService) ListTodos(ctx context.Context, filter model.Filter) ([]model.Todo, error) {
	return nil, nil
}

// PagedTodos implements TodoService
func (s *MockTodoService) PagedTodos(ctx context.Context, filter model.Filter) (model.PagedTodoResponse, error) {
	return model.PagedTodoResponse{}, nil
}

// GetTodo implements TodoService
func (s *MockTodoService) GetTodo(ctx context.Context, id int64) (model.Todo, error) {
	return model.Todo{}, nil
}

// CreateTodo implements TodoService
func (s *MockTodoService) CreateTodo(ctx context.Context, req model.SaveTodoRequest) (model.Todo, error) {
	return model.Todo{}, nil
}

// UpdateTodo implements TodoService
func (s *MockTodoService) UpdateTodo(ctx context.Context, id int64, req model.SaveTodoRequest) (model.Todo, error) {
	return model.Todo{}, nil
}

// CompleteTodo implements TodoService
func (s *MockTodoService) CompleteTodo(ctx context.Context, id int64) (model.Todo, error) {
	return model.Todo{}, nil
}

// CancelTodo implements TodoService
func (s *MockTodoService) CancelTodo(ctx context.Context, id int64) (model.Todo, error) {
	return model.Todo{}, nil
}

// DeleteTodo implements TodoService
func (s *MockTodoService) DeleteTodo(ctx context.Context, id int64) error {
	return nil
}
