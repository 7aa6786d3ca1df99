// Package apperr defines the error taxonomy shared by the engine, the store
// adapters, and the HTTP edge.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrOrderNotFound means the order id had no match in the store
	// response. Non-retryable; callers navigate away.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNotFound means the store answered 404 for some other resource
	// (a product or supplier lookup). Non-retryable.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means a mutation or persistence call was attempted
	// while the order is not in an editable lifecycle state.
	ErrInvalidState = errors.New("order is not editable")

	// ErrInvalidCredentials means a login attempt failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means no valid session token accompanied a request.
	ErrUnauthorized = errors.New("unauthorized")
)

// TransportError wraps a network-level failure on any fetch or patch.
// Retryable: in-memory edits survive it, so re-invoking the same operation
// is always safe.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// SaveError is a non-2xx response to a write. Same handling as
// TransportError: surfaced to the user with in-memory state unchanged so a
// retry needs no re-entering of edits.
type SaveError struct {
	Op         string
	StatusCode int
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// Retryable reports whether re-invoking the failed operation can succeed.
func Retryable(err error) bool {
	var te *TransportError
	var se *SaveError
	return errors.As(err, &te) || errors.As(err, &se)
}

// Kind maps an error to a stable machine-readable label for logs and
// error response bodies.
func Kind(err error) string {
	var te *TransportError
	var se *SaveError

	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrOrderNotFound):
		return "order_not_found"

	case errors.Is(err, ErrNotFound):
		return "not_found"

	case errors.Is(err, ErrInvalidState):
		return "invalid_state"

	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"

	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"

	case errors.As(err, &se):
		return "save_failed"

	case errors.As(err, &te):
		return "transport"

	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"

	case errors.Is(err, context.Canceled):
		return "canceled"

	default:
		return "internal"
	}
}

// HTTPStatus maps an error to the status code the gateway responds with.
func HTTPStatus(err error) int {
	var te *TransportError
	var se *SaveError

	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict

	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.As(err, &se),
		errors.As(err, &te):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}
