// Package rest implements the engine's collaborator ports against the mock
// REST backend: plain JSON over HTTP, no envelope.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saturnhq/purchase-orders/internal/apperr"
)

// Client is the shared HTTP plumbing for the store adapters.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the backend at baseURL. A nil httpClient
// falls back to a 10s-timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// getJSON issues a GET and decodes the response body into out. A 404 maps to
// apperr.ErrNotFound; network failures and malformed bodies surface as
// *apperr.TransportError.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	op := "GET " + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &apperr.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return &apperr.TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &apperr.TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &apperr.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// sendJSON issues a write (POST/PUT/PATCH/DELETE) with a JSON body and
// decodes the echo into out when out is non-nil. A 404 maps to
// apperr.ErrNotFound; other non-2xx responses surface as *apperr.SaveError so
// callers can distinguish them from transport failures; both error kinds are
// retryable with in-memory state intact.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &apperr.TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &apperr.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return &apperr.TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &apperr.SaveError{Op: op, StatusCode: res.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &apperr.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
