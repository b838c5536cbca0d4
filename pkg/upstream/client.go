// Package upstream performs JSON GET requests against third-party APIs and
// classifies their failures.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/h0m10/citypulse-api/pkg/metrics"
)

const (
	defaultTimeout = 10 * time.Second
	errorBodyLimit = 16 << 10
)

// StatusError reports a non-2xx response from an upstream API. Message holds
// the provider's own error text when the body carried one.
type StatusError struct {
	Provider string
	Status   int
	Message  string
	Body     []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusOf returns the upstream HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status > 0 {
		return statusErr.Status
	}
	return http.StatusInternalServerError
}

// DetailOf prefers the provider's error message and falls back to err's text.
func DetailOf(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return err.Error()
}

// Option customises a Client.
type Option func(*Client)

// WithHeader sets a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithTimeout overrides the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithMessageField names the JSON key holding the provider's error message.
func WithMessageField(field string) Option {
	return func(c *Client) {
		c.messageField = field
	}
}

// Client issues GET requests relative to a fixed base URL.
type Client struct {
	provider     string
	baseURL      string
	header       http.Header
	messageField string
	httpClient   *http.Client
}

// New builds a client for provider rooted at baseURL.
func New(provider, baseURL string, opts ...Option) *Client {
	c := &Client{
		provider:     provider,
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		header:       make(http.Header),
		messageField: "message",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the label used in errors and metrics.
func (c *Client) Provider() string {
	return c.provider
}

// GetJSON requests baseURL+path with query and decodes a 2xx body into out.
// path must already be escaped.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", c.provider, err)
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(c.provider, 0, time.Since(start))
		return &TransportError{Provider: c.provider, Err: redact(err)}
	}
	defer resp.Body.Close()
	metrics.RecordUpstream(c.provider, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{
			Provider: c.provider,
			Status:   resp.StatusCode,
			Message:  extractMessage(body, c.messageField),
			Body:     body,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.provider, err)
	}
	return nil
}

// redact drops the *url.Error wrapper, whose text embeds the request URL and
// with it any credential passed as a query parameter.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

func extractMessage(body []byte, field string) string {
	if len(body) == 0 || field == "" {
		return ""
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	msg, _ := payload[field].(string)
	return msg
}
