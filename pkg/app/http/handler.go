// Package http holds the chi-compatible handler adapters, JSON helpers and
// the server lifecycle shared by the tracker API.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
)

// MaxBodySize caps request bodies read by DecodeJSON.
const MaxBodySize = 1 << 20

// HandlerFunc is a handler that reports failures by returning them.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
	// Class refines Code for conflicts, e.g. the revert class of a failed claim.
	Class string `json:"class,omitempty"`
}

// HandleError adapts h to http.HandlerFunc, rendering returned errors with
// DefaultErrorHandler.
//
//	r.Post("/fees/retryable", apphttp.HandleError(h.estimateFee))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler writes err as an ErrorResponse. Errors that are not a
// ServiceError are reported as 500 without their message.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		svcErr = apperrors.GeneralError(err).(*apperrors.ServiceError)
	}

	code := svcErr.StatusCode()
	_ = WriteJSON(w, code, &ErrorResponse{
		Error: svcErr.Message,
		Code:  code,
		Class: svcErr.Class,
	})
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// DecodeJSON reads at most MaxBodySize bytes of the request body into v.
// Failures are returned as bad request errors.
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
