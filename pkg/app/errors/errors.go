// Package errors maps failures of the tracker service onto client-facing
// categories and HTTP status codes.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a successful outcome.
	CategoryNoError Category = iota
	// CategoryDataError the request carried invalid data, e.g. a malformed address or hash
	CategoryDataError
	// CategoryUnauthorized the request has no valid bearer token
	CategoryUnauthorized
	// CategoryForbidden the token does not grant access to the requested address
	CategoryForbidden
	// CategoryResourceNotFound the session or transfer does not exist
	CategoryResourceNotFound
	// CategoryNotSupported the feature is disabled in this deployment
	CategoryNotSupported
	// CategoryDataConflict the request conflicts with on-chain state, e.g. a reverted claim
	CategoryDataConflict
	// CategoryDependencyFailure the indexer or a chain RPC failed after retries
	CategoryDependencyFailure
	// CategoryGeneralError the service failed in an unexpected way
	CategoryGeneralError
	// CategoryRecovering the service is failing but is expected to recover
	CategoryRecovering
	// CategoryConnectionTimeout a dependent service timed out
	CategoryConnectionTimeout
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryNoError:           {"CategoryNoError", http.StatusOK},
	CategoryDataError:         {"CategoryDataError", http.StatusBadRequest},
	CategoryUnauthorized:      {"CategoryUnauthorized", http.StatusUnauthorized},
	CategoryForbidden:         {"CategoryForbidden", http.StatusForbidden},
	CategoryResourceNotFound:  {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryNotSupported:      {"CategoryNotSupported", http.StatusNotImplemented},
	CategoryDataConflict:      {"CategoryDataConflict", http.StatusConflict},
	CategoryDependencyFailure: {"CategoryDependencyFailure", http.StatusBadGateway},
	CategoryGeneralError:      {"CategoryGeneralError", http.StatusInternalServerError},
	CategoryRecovering:        {"CategoryRecovering", http.StatusServiceUnavailable},
	CategoryConnectionTimeout: {"CategoryConnectionTimeout", http.StatusGatewayTimeout},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError carries a category and a message that is safe to return to
// clients. Err is the underlying cause and is only logged.
type ServiceError struct {
	Category Category
	Message  string
	// Class optionally refines the category for clients, e.g. a claim revert class.
	Class string
	Err   error
}

func (err *ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err *ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err *ServiceError) StatusCode() int {
	if info, ok := categories[err.Category]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Is reports whether err is, or wraps, a ServiceError of category cat
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

func newError(cat Category, err error, fallback, message string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "internal server error", "Internal Server Error")
}

// BadRequestError returns message to the client as a 400
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, "bad request", message)
}

// UnAuthorizedError returns message to the client as a 401
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, "unauthorized", message)
}

// ForbiddenError returns message to the client as a 403
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, "forbidden", message)
}

// ResourceNotFoundError returns message to the client as a 404
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, "not found", message)
}

// NotSupportedError reports a feature that is disabled by configuration
func NotSupportedError(err error, message string) error {
	return newError(CategoryNotSupported, err, "not supported", message)
}

// ClassifiedConflictError returns a conflict carrying a machine readable class
func ClassifiedConflictError(err error, message, class string) error {
	e := newError(CategoryDataConflict, err, "conflict", message).(*ServiceError)
	e.Class = class
	return e
}

// DependencyFailureError is used when the indexer or an RPC fails after retries
func DependencyFailureError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, "dependency failure", message)
}

// RecoveringError tells the client to retry later
func RecoveringError(err error, message string) error {
	return newError(CategoryRecovering, err, "temporarily unavailable", message)
}

// TimeoutError reports a request that ran out of time waiting on a dependency
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, "timeout", message)
}
