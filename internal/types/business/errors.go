package business

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is across the engine
var (
	// ErrNotFound is the base error for missing or inactive catalog and
	// ledger references.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is the base error for illegal status changes.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNumberConflict is returned when a generated invoice number collides
	// with a concurrently created invoice.
	ErrNumberConflict = errors.New("invoice number conflict")
)

// ValidationError reports invalid caller input. It is always raised before
// any persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing or inactive referenced record.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is matches NotFoundError against ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidTransitionError reports an illegal status transition. The invoice
// state is left unchanged.
type InvalidTransitionError struct {
	From  string
	Event string
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot apply %s to invoice in status %s", e.Event, e.From)
}

// Is matches InvalidTransitionError against ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NewInvalidTransitionError creates a new InvalidTransitionError.
func NewInvalidTransitionError(from, event string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Event: event}
}

// PersistenceError wraps a store-level failure with the operation that
// produced it.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
