// Package client is a REST client for the fall detection API, used by the dashboard CLI.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "http://localhost:3000/api/v1"
	DefaultTimeout = 30 * time.Second
)

// ErrSessionExpired is returned when the API rejects the stored token. The token is cleared first.
var ErrSessionExpired = errors.New("session expired, please login again")

// APIError is an error envelope returned by the API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Message, e.Code, e.Details)
	}

	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

type meta struct {
	RequestID string `json:"request_id"`
}

type successEnvelope[T any] struct {
	Data T    `json:"data"`
	Meta meta `json:"meta"`
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
	Meta  meta      `json:"meta"`
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenStore
}

// Client talks to the API and attaches the stored bearer token to every request.
type Client struct {
	http   *resty.Client
	tokens TokenStore
}

// New creates a Client.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore("")
	}

	c := &Client{tokens: tokens}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.injectToken)

	return c
}

// Tokens exposes the store the client reads its bearer token from.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

func (c *Client) injectToken(_ *resty.Client, req *resty.Request) error {
	token, err := c.tokens.Load()
	if err != nil {
		return errors.Wrap(err, "load token")
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	return nil
}

// call sends one request and decodes the data member of the envelope into a T.
func call[T any](ctx context.Context, c *Client, method, path string, prepare func(*resty.Request)) (T, error) {
	var (
		zero   T
		result successEnvelope[T]
		failed errorEnvelope
	)

	req := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&failed)
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, errors.Wrapf(err, "%s %s", method, path)
	}

	if resp.IsError() {
		return zero, c.responseError(resp, &failed)
	}

	return result.Data, nil
}

func (c *Client) responseError(resp *resty.Response, failed *errorEnvelope) error {
	apiErr := failed.Error
	if apiErr == nil {
		apiErr = &APIError{Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode())}
	}
	apiErr.StatusCode = resp.StatusCode()

	if resp.StatusCode() == http.StatusUnauthorized && resp.Request.Token != "" {
		if err := c.tokens.Clear(); err != nil {
			return errors.Wrap(err, "clear expired token")
		}

		return errors.WithStack(ErrSessionExpired)
	}

	return apiErr
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
