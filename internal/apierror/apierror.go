// Package apierror defines the typed errors services raise. Handlers are the
// only layer that maps these to HTTP statuses; services and repositories
// never format transport-level responses.
package apierror

import (
	"errors"
	"fmt"
)

// ErrAccountDeactivated is returned on login when the user row exists but
// is_active is false. Distinguished from absent-user so the access gate can
// answer 403 instead of 401.
var ErrAccountDeactivated = errors.New("user account is deactivated")

// ValidationError signals input the storage layer cannot reject on its own:
// cross-field rules, uniqueness prechecks, missing required values.
type ValidationError struct {
	Reason string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func NewFieldValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Reason: "validation failed", Fields: fields}
}

// NotFoundError signals that an id has no matching row, where the service
// treats the missing row as invalid input (e.g. selling a nonexistent
// product). Plain lookups return a nil entity instead.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InsufficientStockError is a validation failure carrying the quantity that
// was actually available when the operation was attempted.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock, available: %d", e.Available)
}

func NewInsufficientStock(available int) *InsufficientStockError {
	return &InsufficientStockError{Available: available}
}
