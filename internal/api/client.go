// Package api is the single choke point for every backend call. Domain
// views never touch transport details.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookmarkd/bookmarkd/internal/log"
)

// TokenSource yields the current bearer token, empty when unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	notifier Notifier
}

// NewClient builds the gateway. An empty baseURL means same-origin (a
// reverse proxy in front of the backend). No timeout is set on the
// transport; a hung request only blocks the command that awaits it.
func NewClient(baseURL string, tokens TokenSource, notifier Notifier) *Client {
	if notifier == nil {
		notifier = StderrNotifier{}
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{},
		tokens:   tokens,
		notifier: notifier,
	}
}

type requestOptions struct {
	headers map[string]string
	noAuth  bool
	silent  bool
}

type Option func(*requestOptions)

// WithHeader adds an extra header to the request.
func WithHeader(key, value string) Option {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

// WithoutAuth skips the bearer credential. Auth is required by default.
func WithoutAuth() Option {
	return func(o *requestOptions) { o.noAuth = true }
}

// Silently suppresses the rejection notification. For calls whose failure
// is an expected transition, like the startup token verification.
func Silently() Option {
	return func(o *requestOptions) { o.silent = true }
}

// Do issues a JSON request against the backend. body is serialized when
// non-nil; on success the response body is decoded into out when non-nil.
// Rejected responses emit exactly one notification carrying the extracted
// message; success emits none.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, opts ...Option) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var token string
	if !options.noAuth {
		token = c.tokens.Token()
		if token == "" {
			return &Error{Kind: KindUnauthenticated, Message: "Not authenticated"}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: "Failed to encode request", cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "Failed to build request", cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range options.headers {
		req.Header.Set(key, value)
	}

	res, err := c.http.Do(req)
	if err != nil {
		log.Warn("Request failed to send",
			zap.String("request.method", method),
			zap.String("request.path", path),
			zap.Error(err),
		)
		return &Error{Kind: KindTransport, Message: "Network error", cause: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "Network error", cause: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := extractMessage(raw, res.StatusCode)
		if !options.silent {
			c.notifier.Notify(message)
		}
		log.Warn("Request rejected by backend",
			zap.String("request.method", method),
			zap.String("request.path", path),
			zap.Int("response.status_code", res.StatusCode),
			zap.String("message", message),
		)
		return &Error{Kind: KindRejected, Message: message}
	}

	// Tolerate empty or non-JSON success bodies, out keeps its zero value.
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			log.Debug("Ignoring undecodable success body",
				zap.String("request.path", path),
				zap.Error(err),
			)
		}
	}
	return nil
}

// extractMessage picks the human-readable message out of an error body:
// error, then message, then msg, then the status reason phrase.
func extractMessage(raw []byte, status int) string {
	var fields struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	// A non-JSON body is treated like an empty object.
	_ = json.Unmarshal(raw, &fields)

	switch {
	case fields.Error != "":
		return fields.Error
	case fields.Message != "":
		return fields.Message
	case fields.Msg != "":
		return fields.Msg
	}
	if reason := http.StatusText(status); reason != "" {
		return reason
	}
	return "Unknown error"
}
