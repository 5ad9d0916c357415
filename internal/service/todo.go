package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cirocosta/todo-tracker-go/internal/model"
	"github.com/cirocosta/todo-tracker-go/internal/repository"
	"github.com/cirocosta/todo-tracker-go/internal/validate"
)

// DefaultPageSize is used by the paged listing when a request leaves
// page_size unset.
const DefaultPageSize = 10

// TodoService handles business logic for todo operations: the query pipeline
// over the full item set and the lifecycle state machine for single items.
type TodoService struct {
	repo            repository.TodoRepository
	defaultPageSize int
	now             func() time.Time
}

// NewTodoService creates a new todo service with the given repository
func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{
		repo:            repo,
		defaultPageSize: DefaultPageSize,
		now:             time.Now,
	}
}

// WithDefaultPageSize overrides the page size used when a request leaves
// page_size unset
func (s *TodoService) WithDefaultPageSize(size int) *TodoService {
	if size > 0 {
		s.defaultPageSize = size
	}
	return s
}

// ListTodos returns the full filtered set in the caller-chosen order. When no
// sort is specified the result is ordered newest-first.
func (s *TodoService) ListTodos(ctx context.Context, filter model.Filter) ([]model.Todo, error) {
	todos, err := s.repo.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	if filter.SortField == "" {
		filter.SortField = sortFieldSubmittedDate
	}
	if filter.SortDirection == "" {
		filter.SortDirection = "desc"
	}

	matched := applyFilter(todos, filter)
	sortForList(matched, filter.SortField, filter.SortDirection)

	return matched, nil
}

// PagedTodos returns one page of the filtered set in the fixed
// priority-then-date ordering. The caller's sort preference is ignored: this
// listing backs a "most urgent first" view and stays stable regardless of it.
func (s *TodoService) PagedTodos(ctx context.Context, filter model.Filter) (model.PagedTodoResponse, error) {
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize < 0 {
		return model.PagedTodoResponse{}, configurationError("page_size must be positive")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	todos, err := s.repo.QueryAll(ctx)
	if err != nil {
		return model.PagedTodoResponse{}, err
	}

	matched := applyFilter(todos, filter)
	sortForPage(matched)

	total := len(matched)

	return model.PagedTodoResponse{
		Todos:        pageWindow(matched, page, pageSize),
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: total,
		TotalPages:   totalPages(total, pageSize),
	}, nil
}

// GetTodo returns a live todo by ID. Soft-deleted items are reported as not
// found.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var notFound repository.ErrTodoNotFound
		if errors.As(err, &notFound) {
			return model.Todo{}, notFoundError("Item not found.")
		}
		return model.Todo{}, err
	}

	if todo.Deleted() {
		return model.Todo{}, notFoundError("Item not found.")
	}

	return todo, nil
}

// CreateTodo creates a new todo. The status is forced to Pending regardless
// of caller input and the priority defaults to Medium when unspecified.
func (s *TodoService) CreateTodo(ctx context.Context, req model.SaveTodoRequest) (model.Todo, error) {
	if fields := validate.SaveTodo(req); fields != nil {
		return model.Todo{}, validationError(fields)
	}

	priority := strings.TrimSpace(req.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}

	now := s.now()
	todo := model.Todo{
		Title:         req.Title,
		Content:       req.Content,
		Tag:           req.Tag,
		Status:        model.StatusPending,
		Priority:      priority,
		SubmittedDate: now,
		CreatedDate:   now,
	}

	return s.repo.Add(ctx, todo)
}

// UpdateTodo overwrites the text fields of a live item where the caller
// supplied non-blank values, and status/priority whenever supplied. Cancelled
// items cannot be updated.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, req model.SaveTodoRequest) (model.Todo, error) {
	if fields := validate.SaveTodo(req); fields != nil {
		return model.Todo{}, validationError(fields)
	}

	todo, err := s.lookupLive(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	if todo.Status == model.StatusCancelled {
		return model.Todo{}, invalidTransitionError("Cannot update a cancelled item.")
	}

	if strings.TrimSpace(req.Title) != "" {
		todo.Title = req.Title
	}
	if strings.TrimSpace(req.Content) != "" {
		todo.Content = req.Content
	}
	if strings.TrimSpace(req.Tag) != "" {
		todo.Tag = req.Tag
	}
	if strings.TrimSpace(req.Status) != "" {
		todo.Status = req.Status
	}
	if strings.TrimSpace(req.Priority) != "" {
		todo.Priority = req.Priority
	}

	now := s.now()
	todo.UpdatedDate = &now

	return s.repo.Save(ctx, todo)
}

// CompleteTodo transitions a Pending item to Completed, stamping
// completed_date exactly once.
func (s *TodoService) CompleteTodo(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.lookupLive(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	switch todo.Status {
	case model.StatusCompleted:
		return model.Todo{}, invalidTransitionError("Item already completed.")
	case model.StatusCancelled:
		return model.Todo{}, invalidTransitionError("Cannot complete a cancelled item.")
	}

	now := s.now()
	todo.Status = model.StatusCompleted
	todo.CompletedDate = &now

	return s.repo.Save(ctx, todo)
}

// CancelTodo transitions a Pending item to Cancelled, stamping
// cancelled_date exactly once.
func (s *TodoService) CancelTodo(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.lookupLive(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	switch todo.Status {
	case model.StatusCancelled:
		return model.Todo{}, invalidTransitionError("Item already cancelled.")
	case model.StatusCompleted:
		return model.Todo{}, invalidTransitionError("Completed items cannot be cancelled.")
	}

	now := s.now()
	todo.Status = model.StatusCancelled
	todo.CancelledDate = &now
	todo.UpdatedDate = &now

	return s.repo.Save(ctx, todo)
}

// DeleteTodo soft-deletes a live item. Completed items cannot be deleted and
// the deletion itself is never reversed.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	todo, err := s.lookupLive(ctx, id)
	if err != nil {
		return err
	}

	if todo.Status == model.StatusCompleted {
		return invalidTransitionError("Cannot delete a completed task.")
	}

	now := s.now()
	todo.DeletedDate = &now
	todo.UpdatedDate = &now

	_, err = s.repo.Save(ctx, todo)
	return err
}

// lookupLive fetches an item by id, reporting soft-deleted or missing items
// as not found
func (s *TodoService) lookupLive(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var notFound repository.ErrTodoNotFound
		if errors.As(err, &notFound) {
			return model.Todo{}, notFoundError("Item not found or already deleted.")
		}
		return model.Todo{}, err
	}

	if todo.Deleted() {
		return model.Todo{}, notFoundError("Item not found or already deleted.")
	}

	return todo, nil
}
