package model

import (
	"fmt"
	"time"
)

// Standard error codes for API responses
const (
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeProductNameDuplicate = "PRODUCT_NAME_DUPLICATE"
	ErrCodeProductPriceInvalid  = "PRODUCT_PRICE_INVALID"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeValidationError      = "VALIDATION_ERROR"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeInternalError        = "INTERNAL_SERVER_ERROR"
)

// ErrorKind tags the closed set of application error variants.
type ErrorKind int

const (
	KindUnclassified ErrorKind = iota
	KindNotFound
	KindValidation
	KindBusinessRule
	KindDatabase
)

// AppError is a typed application error carrying a stable error code and an
// HTTP-style status code. Validation errors additionally carry per-field
// violations; database errors wrap the underlying cause. Construct instances
// only through the New*Error functions so kind, code and status stay in sync.
type AppError struct {
	Kind       ErrorKind
	Code       string
	Message    string
	StatusCode int
	Fields     map[string][]string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError returns a typed not-found error for an entity lookup miss.
func NewNotFoundError(entityName string, id int) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Code:       ErrCodeProductNotFound,
		Message:    fmt.Sprintf("%s with ID %d was not found.", entityName, id),
		StatusCode: 404,
	}
}

// NewValidationError returns a typed validation error carrying the mapping
// from field name to violation messages.
func NewValidationError(fields map[string][]string) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Code:       ErrCodeValidationError,
		Message:    "One or more validation errors occurred.",
		StatusCode: 400,
		Fields:     fields,
	}
}

// NewBusinessRuleError returns a typed business-rule violation with a custom
// error code.
func NewBusinessRuleError(message, code string) *AppError {
	return &AppError{
		Kind:       KindBusinessRule,
		Code:       code,
		Message:    message,
		StatusCode: 400,
	}
}

// NewDatabaseError returns a typed database error wrapping the cause. The
// message is deliberately generic; the cause is for logs only.
func NewDatabaseError(err error) *AppError {
	return &AppError{
		Kind:       KindDatabase,
		Code:       ErrCodeDatabaseError,
		Message:    "A database error occurred.",
		StatusCode: 500,
		Err:        err,
	}
}

// ErrorResponse is the uniform wire shape for every failure. ValidationErrors
// and Details serialise as null when absent; Details is only populated
// outside production.
type ErrorResponse struct {
	StatusCode       int                 `json:"statusCode"`
	Message          string              `json:"message"`
	ErrorCode        string              `json:"errorCode"`
	ValidationErrors map[string][]string `json:"validationErrors"`
	Details          *string             `json:"details"`
	Timestamp        time.Time           `json:"timestamp"`
}

// NewErrorResponse builds an error response with the timestamp set to the
// current UTC time.
func NewErrorResponse(statusCode int, message, errorCode string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
		Timestamp:  time.Now().UTC(),
	}
}
