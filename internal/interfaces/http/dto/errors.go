package dto

import "net/http"

// Error codes raised by the interface layer itself. Domain errors carry
// their own codes and flow through unchanged.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Business-rule rejections map to 422: the request was well-formed but
// the operation is not allowed in the current state.
var ErrorCodeHTTPStatus = map[string]int{
	// Malformed input
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_KEY":     http.StatusBadRequest,

	// Authentication and authorization
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	"ACCOUNT_DISABLED":    http.StatusForbidden,

	// Resource state
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeConflict:        http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rules
	"INSUFFICIENT_STOCK":    http.StatusUnprocessableEntity,
	"INVALID_STATE":         http.StatusUnprocessableEntity,
	"INVALID_STATUS":        http.StatusUnprocessableEntity,
	"INVALID_COUNTRY":       http.StatusUnprocessableEntity,
	"INVALID_SIZE":          http.StatusUnprocessableEntity,
	"INVALID_QUANTITY":      http.StatusUnprocessableEntity,
	"INVALID_PRICE":         http.StatusUnprocessableEntity,
	"INVALID_WINDOW":        http.StatusUnprocessableEntity,
	"INVALID_PRODUCT":       http.StatusUnprocessableEntity,
	"INVALID_CATEGORY":      http.StatusUnprocessableEntity,
	"INVALID_GENDER":        http.StatusUnprocessableEntity,
	"INVALID_NAME":          http.StatusUnprocessableEntity,
	"INVALID_TITLE":         http.StatusUnprocessableEntity,
	"INVALID_IMAGE":         http.StatusUnprocessableEntity,
	"INVALID_SHIPPING":      http.StatusUnprocessableEntity,
	"INVALID_USERNAME":      http.StatusUnprocessableEntity,
	"INVALID_PASSWORD":      http.StatusUnprocessableEntity,
	"INVALID_ROLE":          http.StatusUnprocessableEntity,
	"UNSUPPORTED_FILE_TYPE": http.StatusUnprocessableEntity,

	// Throttling
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Server errors
	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
