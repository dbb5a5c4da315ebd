// Package http provides an HTTP-based implementation of w2n.ImportService
// for posting fixtures to a running W2N service.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nmcintosh/w2n"
)

// DefaultImportTimeout is the default ceiling for an import call. The
// service converts the whole page synchronously, so large fixtures can
// legitimately take a while.
const DefaultImportTimeout = 120 * time.Second

// importPath is the service endpoint an import request is posted to.
const importPath = "/api/W2N"

// StatusError is returned when the service responds with a non-2xx
// status. Body carries the raw response body verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Ensure Client implements w2n.ImportService at compile time.
var _ w2n.ImportService = (*Client)(nil)

// Client posts import requests to a W2N service over HTTP. A Client
// performs exactly one synchronous call per Import; there are no retries.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for import calls.
// Defaults to DefaultImportTimeout (120s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultImportTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Import posts the request to {baseURL}/api/W2N and decodes the response.
// Non-2xx responses return a *StatusError with the body echoed verbatim;
// transport failures return EUNAVAILABLE; a malformed JSON body on a
// successful status returns EINVALID.
func (c *Client) Import(ctx context.Context, req *w2n.ImportRequest) (*w2n.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode import request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+importPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build import request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, w2n.Errorf(w2n.EUNAVAILABLE, "import service unreachable: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, w2n.Errorf(w2n.EUNAVAILABLE, "failed to read import response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result w2n.ImportResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, w2n.Errorf(w2n.EINVALID, "malformed import response: %v", err)
	}

	return &result, nil
}
