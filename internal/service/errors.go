// package service implements business logic for the application
package service

import (
	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// ErrorKind discriminates the expected failure modes of the core operations.
type ErrorKind string

const (
	// KindValidationFailed means the input failed field validation
	KindValidationFailed ErrorKind = "validation_failed"

	// KindNotFound means the id is absent or the item is soft-deleted
	KindNotFound ErrorKind = "not_found"

	// KindInvalidTransition means a lifecycle guard blocked the operation
	KindInvalidTransition ErrorKind = "invalid_transition"

	// KindConfigurationError means the request carried a value no client
	// should ever send, e.g. a negative page size
	KindConfigurationError ErrorKind = "configuration_error"
)

// Error is the discriminated failure result of a core operation. Callers
// branch on Kind with errors.As; Fields is populated for validation failures
// only.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []model.FieldError
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func invalidTransitionError(message string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: message}
}

func validationError(fields []model.FieldError) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Validation failed.", Fields: fields}
}

func configurationError(message string) *Error {
	return &Error{Kind: KindConfigurationError, Message: message}
}
