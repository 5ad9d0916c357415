// package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"

	"github.com/cirocosta/todo-tracker-go/internal/model"
	"github.com/cirocosta/todo-tracker-go/pkg/router"
)

// TodoService defines the minimal interface needed by the API
type TodoService interface {
	// ListTodos returns the full filtered set in the caller-chosen order
	ListTodos(ctx context.Context, filter model.Filter) ([]model.Todo, error)

	// PagedTodos returns one page of the fixed priority-then-date ordering
	PagedTodos(ctx context.Context, filter model.Filter) (model.PagedTodoResponse, error)

	// GetTodo returns a live todo by ID
	GetTodo(ctx context.Context, id int64) (model.Todo, error)

	// CreateTodo creates a new todo
	CreateTodo(ctx context.Context, req model.SaveTodoRequest) (model.Todo, error)

	// UpdateTodo updates an existing todo
	UpdateTodo(ctx context.Context, id int64, req model.SaveTodoRequest) (model.Todo, error)

	// CompleteTodo marks a pending todo as completed
	CompleteTodo(ctx context.Context, id int64) (model.Todo, error)

	// CancelTodo marks a pending todo as cancelled
	CancelTodo(ctx context.Context, id int64) (model.Todo, error)

	// DeleteTodo soft-deletes a todo
	DeleteTodo(ctx context.Context, id int64) error
}

// Options tunes the optional parts of the HTTP surface
type Options struct {
	// CORSOrigin, when non-empty, is the single origin allowed by the CORS
	// middleware
	CORSOrigin string

	// UI, when set, is served at the root path instead of the plain-text
	// welcome page
	UI http.Handler
}

// API holds the components needed to register routes
type API struct {
	router      *router.DocRouter
	todoHandler *TodoHandler
	opts        Options
}

// NewRouter creates a new router with all routes configured
func NewRouter(todoService TodoService, opts Options) *router.DocRouter {
	r := router.NewDocRouter("Todo Tracker API",
		"Task tracking API with filtering, sorting, and paging",
		"1.0.0",
	)

	// Add middlewares
	r.Use(loggerMiddleware)
	r.Use(recovererMiddleware)
	if opts.CORSOrigin != "" {
		r.Use(corsMiddleware(opts.CORSOrigin))
	}

	api := &API{router: r, todoHandler: NewTodoHandler(todoService), opts: opts}

	// Define routes
	api.registerRoutes()

	return r
}

// registerRoutes configures all API routes with documentation
func (api *API) registerRoutes() {
	// Error schema for documentation
	errSchema := &model.ErrorResponse{}

	home := homeHandler
	if api.opts.UI != nil {
		home = api.opts.UI.ServeHTTP
	}

	api.router.Route("GET", "/", home).
		WithName("Home").
		WithDescription("Browser client").
		WithResponse(nil).
		WithTags("Core").
		Register()

	api.router.Route("GET", "/health", healthHandler).
		WithName("Health Check").
		WithDescription("API health check endpoint").
		WithResponse(nil).
		WithTags("Core").
		Register()

	docRouter := api.router
	api.router.Route("GET", "/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, docRouter.OpenAPI(), http.StatusOK)
	}).
		WithName("OpenAPI Document").
		WithDescription("Machine-readable description of this API").
		WithResponse(nil).
		WithTags("Core").
		Register()

	api.router.Route("GET", "/todos", api.todoHandler.ListTodos).
		WithName("List Todos").
		WithDescription("Get all todo items matching the filter, in the caller-chosen order").
		WithResponse(&model.TodoListResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "invalid query parameters"}`,
			}).
		WithErrorResponse("500", "Internal Server Error", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route("GET", "/todos/paged", api.todoHandler.PagedTodos).
		WithName("Paged Todos").
		WithDescription("Get one page of matching items, most urgent first").
		WithResponse(&model.PagedTodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "page_size must be positive", "kind": "configuration_error"}`,
			}).
		WithErrorResponse("500", "Internal Server Error", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/todos", api.todoHandler.CreateTodo).
		WithName("Create Todo").
		WithDescription("Create a new todo item in the Pending state").
		WithRequest(&model.SaveTodoRequest{}).
		WithResponse(&model.CreateTodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "invalid request format"}`,
			}).
		WithErrorResponse("422", "Unprocessable Entity", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "Validation failed.", "kind": "validation_failed", "fields": [{"field": "title", "message": "Title is required."}]}`,
			}).
		WithTags("Todos").
		Register()

	api.router.Route("GET", "/todos/{id}", api.todoHandler.GetTodo).
		WithName("Get Todo").
		WithDescription("Get a todo item by ID").
		WithResponse(&model.TodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("404", "Not Found", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "Item not found.", "kind": "not_found"}`,
			}).
		WithTags("Todos").
		Register()

	api.router.Route("PUT", "/todos/{id}", api.todoHandler.UpdateTodo).
		WithName("Update Todo").
		WithDescription("Update a todo item; cancelled items cannot be updated").
		WithRequest(&model.SaveTodoRequest{}).
		WithResponse(&model.TodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("404", "Not Found", errSchema).
		WithErrorResponse("409", "Conflict", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "Cannot update a cancelled item.", "kind": "invalid_transition"}`,
			}).
		WithErrorResponse("422", "Unprocessable Entity", errSchema).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/todos/{id}/complete", api.todoHandler.CompleteTodo).
		WithName("Complete Todo").
		WithDescription("Transition a pending todo item to Completed").
		WithResponse(&model.TodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("404", "Not Found", errSchema).
		WithErrorResponse("409", "Conflict", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "Item already completed.", "kind": "invalid_transition"}`,
			}).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/todos/{id}/cancel", api.todoHandler.CancelTodo).
		WithName("Cancel Todo").
		WithDescription("Transition a pending todo item to Cancelled").
		WithResponse(&model.TodoResponse{}).
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("404", "Not Found", errSchema).
		WithErrorResponse("409", "Conflict", errSchema,
			router.Example{
				ContentType: "application/json",
				Value:       `{"error": "Completed items cannot be cancelled.", "kind": "invalid_transition"}`,
			}).
		WithTags("Todos").
		Register()

	api.router.Route("DELETE", "/todos/{id}", api.todoHandler.DeleteTodo).
		WithName("Delete Todo").
		WithDescription("Soft-delete a todo item; completed items cannot be deleted").
		WithErrorResponse("400", "Bad Request", errSchema).
		WithErrorResponse("404", "Not Found", errSchema).
		WithErrorResponse("409", "Conflict", errSchema).
		WithTags("Todos").
		Register()
}

// homeHandler handles the home page when no UI is mounted
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Welcome to the Todo Tracker API"))
}

// healthHandler handles the health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
