// package model contains the data models for the todo tracker application
package model

import (
	"time"
)

// Status values a todo item can be in. Pending is the only state items are
// created in; Completed and Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Priority values a todo item can carry.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Statuses lists every valid status value.
var Statuses = []string{StatusPending, StatusCompleted, StatusCancelled}

// Priorities lists every valid priority value.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Todo represents a todo item in the system. DeletedDate being set means the
// item is soft-deleted: it never appears in listings and id lookups treat it
// as absent.
type Todo struct {
	ID            int64      `json:"id" doc:"Unique identifier for the todo item" example:"42"`
	Title         string     `json:"title" doc:"Title of the todo item" example:"Buy groceries"`
	Content       string     `json:"content" doc:"Detailed description of the todo item" example:"Milk, eggs, and bread"`
	Tag           string     `json:"tag" doc:"Free-form tag used for grouping" example:"personal"`
	Status        string     `json:"status" doc:"Lifecycle status" example:"Pending" enum:"Pending,Completed,Cancelled"`
	Priority      string     `json:"priority" doc:"Priority level" example:"Medium" enum:"Low,Medium,High"`
	SubmittedDate time.Time  `json:"submitted_date" doc:"When the item was submitted" example:"2025-04-01T12:00:00Z"`
	CompletedDate *time.Time `json:"completed_date,omitempty" doc:"When the item was completed"`
	CancelledDate *time.Time `json:"cancelled_date,omitempty" doc:"When the item was cancelled"`
	CreatedDate   time.Time  `json:"-"`
	UpdatedDate   *time.Time `json:"updated_date,omitempty" doc:"When the item was last modified"`
	DeletedDate   *time.Time `json:"-"`

	// Version is bumped by the store on every save and is only used for the
	// optimistic concurrency check. Never exposed to clients.
	Version int64 `json:"-"`
}

// Deleted reports whether the item has been soft-deleted.
func (t Todo) Deleted() bool {
	return t.DeletedDate != nil
}

// SaveTodoRequest is the input for both create and update operations. Blank
// fields are left untouched on update; status and priority are optional on
// create and default to Pending and Medium.
type SaveTodoRequest struct {
	Title    string `json:"title" doc:"Title of the todo item" example:"Buy groceries"`
	Content  string `json:"content" doc:"Detailed description" example:"Milk, eggs, and bread"`
	Tag      string `json:"tag" doc:"Free-form tag" example:"personal"`
	Status   string `json:"status,omitempty" doc:"Lifecycle status" enum:"Pending,Completed,Cancelled"`
	Priority string `json:"priority,omitempty" doc:"Priority level" enum:"Low,Medium,High"`
}

// Filter is the combined filter, sort, and paging specification for one
// query. Blank or zero fields place no constraint.
type Filter struct {
	Status        string `json:"status,omitempty" doc:"Exact status match"`
	Priority      string `json:"priority,omitempty" doc:"Exact priority match"`
	Tag           string `json:"tag,omitempty" doc:"Exact tag match"`
	Year          int    `json:"year,omitempty" doc:"Calendar year of the submitted date"`
	Month         int    `json:"month,omitempty" doc:"Calendar month (1-12) of the submitted date"`
	SearchText    string `json:"search_text,omitempty" doc:"Case-insensitive substring over title, content, and tag"`
	SortField     string `json:"sort_field,omitempty" doc:"priority or submittedDate" example:"submittedDate"`
	SortDirection string `json:"sort_direction,omitempty" doc:"asc or desc" example:"desc"`
	Page          int    `json:"page,omitempty" doc:"1-based page index (paged listing only)" example:"1"`
	PageSize      int    `json:"page_size,omitempty" doc:"Page size (paged listing only)" example:"10"`
}

// TodoResponse is used for responses with a single todo item
type TodoResponse struct {
	Todo Todo `json:"todo" doc:"A todo item"`
}

// TodoListResponse is used for responses with multiple todo items
type TodoListResponse struct {
	Todos []Todo `json:"todos" doc:"List of todo items"`
}

// PagedTodoResponse is one page of the fixed priority-then-date ordering,
// plus paging metadata.
type PagedTodoResponse struct {
	Todos        []Todo `json:"todos" doc:"Items on this page"`
	Page         int    `json:"page" doc:"1-based page index" example:"1"`
	PageSize     int    `json:"page_size" doc:"Requested page size" example:"10"`
	TotalRecords int    `json:"total_records" doc:"Count of items matching the filter" example:"42"`
	TotalPages   int    `json:"total_pages" doc:"ceil(total_records / page_size)" example:"5"`
}

// CreateTodoResponse carries the id assigned to a newly created item.
type CreateTodoResponse struct {
	ID int64 `json:"id" doc:"Identifier of the created item" example:"42"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field" doc:"Name of the offending field" example:"title"`
	Message string `json:"message" doc:"What is wrong with it" example:"Title is required."`
}

// ErrorResponse represents an error returned by the API. Kind is one of
// validation_failed, not_found, invalid_transition, configuration_error, or
// internal, so clients never have to string-match the message.
type ErrorResponse struct {
	Error  string       `json:"error" doc:"Human-readable error message" example:"Item not found or already deleted."`
	Kind   string       `json:"kind,omitempty" doc:"Machine-readable error kind" example:"not_found"`
	Fields []FieldError `json:"fields,omitempty" doc:"Per-field validation messages"`
}
