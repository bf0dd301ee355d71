package result

import "net/http"

// Result is the outcome of an operation: either a success carrying a payload
// or a failure carrying an error message, optional validation violations and
// an HTTP-style status code. Fields are unexported so a Result can only be
// built through the factory functions, which keeps the success/payload/status
// combination consistent.
type Result[T any] struct {
	success          bool
	data             T
	errorMessage     string
	validationErrors []string
	statusCode       int
}

// Success returns a successful result with status 200.
func Success[T any](data T) Result[T] {
	return Result[T]{success: true, data: data, statusCode: http.StatusOK}
}

// SuccessWithStatus returns a successful result with a custom status code.
func SuccessWithStatus[T any](data T, statusCode int) Result[T] {
	return Result[T]{success: true, data: data, statusCode: statusCode}
}

// Created returns a successful result with status 201.
func Created[T any](data T) Result[T] {
	return Result[T]{success: true, data: data, statusCode: http.StatusCreated}
}

// Failure returns a failed result with the given message and status code.
func Failure[T any](errorMessage string, statusCode int) Result[T] {
	return Result[T]{errorMessage: errorMessage, statusCode: statusCode}
}

// ValidationFailure returns a failed result carrying the ordered list of
// validation violations, status 400.
func ValidationFailure[T any](violations []string) Result[T] {
	return Result[T]{
		errorMessage:     "Validation failed",
		validationErrors: violations,
		statusCode:       http.StatusBadRequest,
	}
}

// NotFound returns a failed result with status 404.
func NotFound[T any](message string) Result[T] {
	return Result[T]{errorMessage: message, statusCode: http.StatusNotFound}
}

// Unauthorized returns a failed result with status 401.
func Unauthorized[T any](message string) Result[T] {
	return Result[T]{errorMessage: message, statusCode: http.StatusUnauthorized}
}

// Forbidden returns a failed result with status 403.
func Forbidden[T any](message string) Result[T] {
	return Result[T]{errorMessage: message, statusCode: http.StatusForbidden}
}

// IsSuccess reports whether the result is a success.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// Data returns the payload. Only meaningful when IsSuccess is true.
func (r Result[T]) Data() T {
	return r.data
}

// ErrorMessage returns the error message of a failed result.
func (r Result[T]) ErrorMessage() string {
	return r.errorMessage
}

// ValidationErrors returns the ordered validation violations, or nil when the
// failure is not a validation failure.
func (r Result[T]) ValidationErrors() []string {
	return r.validationErrors
}

// StatusCode returns the HTTP-style status code of the result.
func (r Result[T]) StatusCode() int {
	return r.statusCode
}

// Map applies fn to the payload of a successful result. Failures are
// propagated unchanged, validation violations included.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.success {
		return FailureFrom[U](r)
	}
	return SuccessWithStatus(fn(r.data), r.statusCode)
}

// FailureFrom re-types a failed result, preserving its message, validation
// violations and status code verbatim.
func FailureFrom[U, T any](r Result[T]) Result[U] {
	return Result[U]{
		errorMessage:     r.errorMessage,
		validationErrors: r.validationErrors,
		statusCode:       r.statusCode,
	}
}
