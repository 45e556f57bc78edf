// Package httpapi implements ports.StudentTransport over HTTP+JSON.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 10 * time.Second

	// MaxResponseSize is the maximum accepted response body (4MB)
	MaxResponseSize = 4 * 1024 * 1024

	// DefaultUserAgent is sent when Options.UserAgent is empty
	DefaultUserAgent = "roster/dev"

	defaultResourcePath = "/students"
)

// ErrResponseTooLarge is returned when a body exceeds MaxResponseSize.
var ErrResponseTooLarge = errors.New("response exceeds maximum allowed size")

// Options configures the HTTP transport.
type Options struct {
	BaseURL      string
	ResourcePath string
	Timeout      time.Duration
	UserAgent    string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     ports.Logger
}

// Client talks to the student service.
type Client struct {
	client    *http.Client
	base      *url.URL
	resource  string
	userAgent string
	logger    ports.Logger
}

// New creates a Client. The base URL must be absolute http(s).
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be an absolute http(s) URL", opts.BaseURL)
	}

	resource := opts.ResourcePath
	if resource == "" {
		resource = defaultResourcePath
	}
	if !strings.HasPrefix(resource, "/") {
		resource = "/" + resource
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	var logger ports.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "http_transport")
	}

	return &Client{
		client:    httpClient,
		base:      base,
		resource:  strings.TrimSuffix(resource, "/"),
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// List implements ports.StudentTransport.
func (c *Client) List(ctx context.Context) (ports.Response[[]student.Student], error) {
	return exchange[[]student.Student](ctx, c, http.MethodGet, c.collectionURL(), nil, true)
}

// Get implements ports.StudentTransport.
func (c *Client) Get(ctx context.Context, id student.ID) (ports.Response[student.Student], error) {
	return exchange[student.Student](ctx, c, http.MethodGet, c.itemURL(id), nil, true)
}

// Create implements ports.StudentTransport.
func (c *Client) Create(ctx context.Context, req student.Request) (ports.Response[student.Student], error) {
	return exchange[student.Student](ctx, c, http.MethodPost, c.collectionURL(), req, true)
}

// Update implements ports.StudentTransport.
func (c *Client) Update(ctx context.Context, id student.ID, req student.Request) (ports.Response[student.Student], error) {
	return exchange[student.Student](ctx, c, http.MethodPut, c.itemURL(id), req, true)
}

// Delete implements ports.StudentTransport. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id student.ID) (ports.Response[struct{}], error) {
	return exchange[struct{}](ctx, c, http.MethodDelete, c.itemURL(id), nil, false)
}

func (c *Client) collectionURL() string {
	return c.base.JoinPath(c.resource).String()
}

func (c *Client) itemURL(id student.ID) string {
	return c.base.JoinPath(c.resource, id.String()).String()
}

func exchange[T any](ctx context.Context, c *Client, method, target string, payload any, decode bool) (ports.Response[T], error) {
	var out ports.Response[T]
	started := time.Now()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return out, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return out, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logDebug(ctx, "request failed", "method", method, "url", target, "error", err)
		return out, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	out.StatusCode = resp.StatusCode
	out.Reason = reasonPhrase(resp)

	raw, err := readBody(resp)
	if err != nil {
		return out, err
	}

	c.logDebug(ctx, "request completed",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if !out.Successful() {
		out.Detail = errorDetail(raw)
		return out, nil
	}

	if !decode {
		return out, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	out.Body = &value
	return out, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp.ContentLength > MaxResponseSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrResponseTooLarge, resp.ContentLength)
	}

	limited := io.LimitReader(resp.Body, MaxResponseSize+1)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(raw)) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return raw, nil
}

// reasonPhrase strips the numeric prefix from resp.Status ("500 Internal
// Server Error" -> "Internal Server Error").
func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(resp.Status)
	prefix := strconv.Itoa(resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(status, prefix)); reason != "" && reason != status {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

func errorDetail(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Error
}

func (c *Client) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(ctx, msg, fields...)
}

var _ ports.StudentTransport = (*Client)(nil)
