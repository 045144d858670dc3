package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/proyectmyvet/myvet/internal/core/store"
)

// Client talks to the MyVet backend. Authenticated endpoints get their bearer
// token attached by the request gate (see transport.go); callers never handle
// credentials directly. Login and register go through a separate plain client:
// a rejected login must not carry a stale token, and its 401 must not clear
// the session that is already stored.
type Client struct {
	baseURL string
	// gated: token attachment plus 401 watcher.
	httpClient *http.Client
	// plain: auth endpoints only.
	authClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithVerboseLogging wraps both transports so every request and response line
// is written to the given logger.
func WithVerboseLogging(logf func(format string, args ...any)) Option {
	return func(client *Client) {
		client.httpClient.Transport = &loggingTransport{
			next: client.httpClient.Transport,
			logf: logf,
		}
		client.authClient.Transport = &loggingTransport{
			next: client.authClient.Transport,
			logf: logf,
		}
	}
}

// New creates a backend client bound to a session store. Every outgoing
// request on the gated client reads the current token from the store, and
// every 401 response clears it.
func New(baseURL string, sessions *store.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   20 * time.Second,
			Transport: newRequestGate(http.DefaultTransport, sessions),
		},
		authClient: &http.Client{
			Timeout:   20 * time.Second,
			Transport: http.DefaultTransport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned for any non-2xx response, carrying the raw body so
// callers can surface server-provided detail where appropriate.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.Code, string(e.Body))
}

// doRequest performs a gated HTTP request and decodes the response into
// result. A nil result discards the body; an empty 2xx body leaves result
// untouched.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	return c.do(ctx, c.httpClient, method, path, body, result)
}

// doAuthRequest is doRequest over the plain client, for login and register.
func (c *Client) doAuthRequest(ctx context.Context, method, path string, body any, result any) error {
	return c.do(ctx, c.authClient, method, path, body, result)
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: respBody}
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
