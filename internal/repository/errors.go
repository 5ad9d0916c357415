// package repository provides data access and error types
package repository

import (
	"fmt"
)

// ErrTodoNotFound is returned when a todo with the specified ID does not exist
type ErrTodoNotFound struct {
	ID int64
}

// Error implements the error interface
func (e ErrTodoNotFound) Error() string {
	return fmt.Sprintf("todo with id %d not found", e.ID)
}

// ErrTodoConflict is returned by Save when the stored row has been modified
// since the caller fetched it, i.e. the optimistic version check failed.
type ErrTodoConflict struct {
	ID int64
}

// Error implements the error interface
func (e ErrTodoConflict) Error() string {
	return fmt.Sprintf("todo with id %d was modified concurrently", e.ID)
}
