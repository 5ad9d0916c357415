// package web serves the embedded browser client for the todo tracker
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.tmpl"))

// TodoLister is the slice of the todo service the UI needs: mutations go
// straight to the JSON API from the browser.
type TodoLister interface {
	ListTodos(ctx context.Context, filter model.Filter) ([]model.Todo, error)
}

// Server renders the single-page todo client
type Server struct {
	lister TodoLister
}

// NewServer creates a new UI server on top of the given lister
func NewServer(lister TodoLister) *Server {
	return &Server{lister: lister}
}

type todoRow struct {
	ID        int64
	Title     string
	Content   string
	Tag       string
	Status    string
	Priority  string
	Submitted string
	Pending   bool
	Completed bool
}

type indexData struct {
	Rows       []todoRow
	Total      int
	Statuses   []string
	Priorities []string
	Filter     model.Filter
	Error      string
}

// ServeHTTP renders the item table for the filter encoded in the query
// string
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	data := indexData{
		Statuses:   model.Statuses,
		Priorities: model.Priorities,
		Filter:     filter,
	}

	todos, err := s.lister.ListTodos(r.Context(), filter)
	if err != nil {
		data.Error = "failed to load todos"
	} else {
		data.Total = len(todos)
		data.Rows = buildRows(todos)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, "error rendering page", http.StatusInternalServerError)
	}
}

func filterFromQuery(r *http.Request) model.Filter {
	q := r.URL.Query()
	return model.Filter{
		Status:        q.Get("status"),
		Priority:      q.Get("priority"),
		Tag:           q.Get("tag"),
		SearchText:    q.Get("search_text"),
		SortField:     q.Get("sort_field"),
		SortDirection: q.Get("sort_direction"),
	}
}

func buildRows(todos []model.Todo) []todoRow {
	rows := make([]todoRow, 0, len(todos))
	for _, todo := range todos {
		rows = append(rows, todoRow{
			ID:        todo.ID,
			Title:     todo.Title,
			Content:   todo.Content,
			Tag:       todo.Tag,
			Status:    todo.Status,
			Priority:  todo.Priority,
			Submitted: todo.SubmittedDate.Format(time.DateOnly),
			Pending:   todo.Status == model.StatusPending,
			Completed: todo.Status == model.StatusCompleted,
		})
	}
	return rows
}
