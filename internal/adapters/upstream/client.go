// Package upstream is the single HTTP client for the remote EMS REST API.
// All feature panels go through it: it attaches the bearer token, decodes
// JSON, and converts failures into typed errors. Calls are fire-once with
// no retry or backoff, and honor the request context, so a panel that is
// torn down cancels its in-flight fetches.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ems-gateway/internal/config"
	"ems-gateway/internal/core/domain"
	"ems-gateway/internal/pkg/metrics"
)

// HTTPError is a non-2xx answer from the EMS API
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// Client issues requests against the EMS API base URL
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client from the upstream config
func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// NewWithBaseURL creates a client against an explicit base URL (tests)
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Do issues one request. token may be empty (login/register); when set it
// is attached as Authorization: Bearer. body is JSON-encoded when non-nil;
// the response body is decoded into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, 0)
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(method, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			// some upstream writes (DELETE, status updates) return no body
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of an error body.
// The EMS API answers either {"message": ...} or {"error": ...}; plain
// text bodies are used verbatim.
func readErrorMessage(body io.Reader, status int) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return http.StatusText(status)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(raw)
}
