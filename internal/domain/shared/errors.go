package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// NewInsufficientStockError builds the stock rejection returned by the ledger.
// The message format is part of the storefront contract and must not change.
func NewInsufficientStockError(size string, available int64) *DomainError {
	return NewDomainError(
		"INSUFFICIENT_STOCK",
		fmt.Sprintf("Insufficient stock for size %s. Only %d available.", size, available),
	)
}

// ValidationViolation describes a single invalid request field.
type ValidationViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field violations for one request.
// All violations are collected before the request is rejected.
type ValidationError struct {
	Violations []ValidationViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Violations[0].Field, e.Violations[0].Message)
}

// Add appends a violation for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, ValidationViolation{Field: field, Message: message})
}

// HasViolations reports whether any field failed validation.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
