package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrOrderNotFound, "order_not_found"},
		{fmt.Errorf("load: %w", ErrOrderNotFound), "order_not_found"},
		{ErrNotFound, "not_found"},
		{fmt.Errorf("GET /products/ghost: %w", ErrNotFound), "not_found"},
		{ErrInvalidState, "invalid_state"},
		{ErrInvalidCredentials, "invalid_credentials"},
		{ErrUnauthorized, "unauthorized"},
		{&SaveError{Op: "PATCH /purchase-orders/1", StatusCode: 500}, "save_failed"},
		{&TransportError{Op: "GET /products", Err: errors.New("refused")}, "transport"},
		{context.DeadlineExceeded, "timeout"},
		{context.Canceled, "canceled"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err))
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrOrderNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrInvalidState))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidCredentials))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&SaveError{StatusCode: 500}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&TransportError{Err: errors.New("x")}))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&TransportError{Err: errors.New("x")}))
	assert.True(t, Retryable(&SaveError{StatusCode: 503}))
	assert.False(t, Retryable(ErrOrderNotFound))
	assert.False(t, Retryable(ErrInvalidState))
	assert.False(t, Retryable(nil))
}

func TestTransportError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := fmt.Errorf("load: %w", &TransportError{Op: "GET /purchase-orders", Err: inner})

	assert.ErrorIs(t, err, inner)

	var te *TransportError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, "GET /purchase-orders", te.Op)
}
