// package api provides the HTTP API for the application
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cirocosta/todo-tracker-go/internal/model"
	"github.com/cirocosta/todo-tracker-go/internal/repository"
	"github.com/cirocosta/todo-tracker-go/internal/service"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	todoService TodoService
}

// NewTodoHandler creates a new todo handler with the given service
func NewTodoHandler(todoService TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		writeError(w, "invalid query parameters", http.StatusBadRequest)
		return
	}

	todos, err := h.todoService.ListTodos(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "error listing todos")
		return
	}

	writeJSON(w, model.TodoListResponse{Todos: todos}, http.StatusOK)
}

// PagedTodos handles GET /todos/paged
func (h *TodoHandler) PagedTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		writeError(w, "invalid query parameters", http.StatusBadRequest)
		return
	}

	page, err := h.todoService.PagedTodos(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "error listing todos")
		return
	}

	writeJSON(w, page, http.StatusOK)
}

// GetTodo handles GET /todos/{id}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "error getting todo")
		return
	}

	writeJSON(w, model.TodoResponse{Todo: todo}, http.StatusOK)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req model.SaveTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request format", http.StatusBadRequest)
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "error creating todo")
		return
	}

	writeJSON(w, model.CreateTodoResponse{ID: todo.ID}, http.StatusCreated)
}

// UpdateTodo handles PUT /todos/{id}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req model.SaveTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request format", http.StatusBadRequest)
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "error updating todo")
		return
	}

	writeJSON(w, model.TodoResponse{Todo: todo}, http.StatusOK)
}

// CompleteTodo handles POST /todos/{id}/complete
func (h *TodoHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.CompleteTodo(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "error completing todo")
		return
	}

	writeJSON(w, model.TodoResponse{Todo: todo}, http.StatusOK)
}

// CancelTodo handles POST /todos/{id}/cancel
func (h *TodoHandler) CancelTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.CancelTodo(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "error cancelling todo")
		return
	}

	writeJSON(w, model.TodoResponse{Todo: todo}, http.StatusOK)
}

// DeleteTodo handles DELETE /todos/{id}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		writeServiceError(w, err, "error deleting todo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// todoID parses the {id} path value, writing a 400 on malformed input
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, "invalid todo id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// filterFromRequest builds the filter specification from query parameters.
// Absent parameters stay at their zero values and place no constraint.
func filterFromRequest(r *http.Request) (model.Filter, error) {
	q := r.URL.Query()

	filter := model.Filter{
		Status:        q.Get("status"),
		Priority:      q.Get("priority"),
		Tag:           q.Get("tag"),
		SearchText:    q.Get("search_text"),
		SortField:     q.Get("sort_field"),
		SortDirection: q.Get("sort_direction"),
	}

	for _, p := range []struct {
		name string
		dest *int
	}{
		{"year", &filter.Year},
		{"month", &filter.Month},
		{"page", &filter.Page},
		{"page_size", &filter.PageSize},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return model.Filter{}, err
		}
		*p.dest = value
	}

	return filter, nil
}

// writeServiceError maps a core failure to its HTTP shape. The fallback
// message covers unexpected errors only; expected failures carry their own
// message and kind.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		writeJSON(w, model.ErrorResponse{
			Error:  svcErr.Message,
			Kind:   string(svcErr.Kind),
			Fields: svcErr.Fields,
		}, statusForKind(svcErr.Kind))
		return
	}

	var conflict repository.ErrTodoConflict
	if errors.As(err, &conflict) {
		writeJSON(w, model.ErrorResponse{
			Error: "todo was modified concurrently, fetch it again and retry",
			Kind:  "conflict",
		}, http.StatusConflict)
		return
	}

	writeError(w, fallback, http.StatusInternalServerError)
}

func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidationFailed:
		return http.StatusUnprocessableEntity
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindInvalidTransition:
		return http.StatusConflict
	case service.KindConfigurationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
	}
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: message,
	})
}
