// Package api implements the request gateway: the single chokepoint through
// which every remote call flows. It injects credentials, normalizes errors
// and detects session expiry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"bookkeeper/internal/logging"
)

// TokenSource yields the current session token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Notifier is the slice of the notification surface the gateway needs.
type Notifier interface {
	Error(msg string)
	Warning(msg string)
}

// RequestDescriptor is the unit of work sent through the gateway.
type RequestDescriptor struct {
	Method string
	Path   string
	Query  map[string]string
	Body   any
}

// Client performs JSON-over-HTTP calls against the bookkeeping API.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	notifier Notifier
	log      logging.Logger

	// expired runs synchronously on a 401 before the call fails with
	// ErrSessionExpired. The application wires it to clear the session
	// store and redirect to the login view.
	expired func()
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, notifier Notifier, log logging.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		notifier: notifier,
		log:      log,
	}
}

// OnSessionExpired registers the hook invoked when any call returns 401.
func (c *Client) OnSessionExpired(fn func()) {
	c.expired = fn
}

// errorBody is the optional error envelope of non-2xx responses.
type errorBody struct {
	Error string `json:"error"`
}

// Call executes one descriptor and returns the raw response body.
//
// Every outgoing request carries the Authorization header built from the
// current token (if any), a Content-Type header on bodies, and a generated
// X-Request-ID used as the logging correlation key. A 401 response clears
// the session, forces navigation to login and fails with ErrSessionExpired
// regardless of the response body.
func (c *Client) Call(ctx context.Context, d RequestDescriptor) (json.RawMessage, error) {
	reqURL := c.baseURL + d.Path
	if q := encodeQuery(d.Query); q != "" {
		reqURL += "?" + q
	}

	var body io.Reader
	if d.Body != nil {
		data, err := json.Marshal(d.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if d.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	log := c.log.With("method", d.Method, "path", d.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "transport failure", "error", err)
		c.notifier.Error("Request failed, please try again later")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "reading response failed", "error", err)
		c.notifier.Error("Request failed, please try again later")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn(ctx, "session expired")
		if c.expired != nil {
			c.expired()
		}
		c.notifier.Warning("Session expired, please log in again")
		return nil, ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
			msg = eb.Error
		}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", msg)
		c.notifier.Error(msg)
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}

	return data, nil
}

// Get issues a GET request. The params map is serialized into a query string
// only when at least one value is present; empty values are skipped.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	return c.Call(ctx, RequestDescriptor{Method: http.MethodGet, Path: path, Query: params})
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Call(ctx, RequestDescriptor{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Call(ctx, RequestDescriptor{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Call(ctx, RequestDescriptor{Method: http.MethodDelete, Path: path})
}

// DecodeInto unmarshals a raw gateway response into out. An empty body leaves
// out untouched.
func DecodeInto(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	return values.Encode()
}
