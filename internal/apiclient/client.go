// Package apiclient talks to the SmartMart REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const requestIDHeader = "X-Request-ID"

// Observer receives one record per completed backend call. Code is 0 when
// the request never completed.
type Observer interface {
	ObserveBackend(resource, method string, code int, elapsed time.Duration)
}

// Client wraps the HTTP interactions shared by every resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithObserver installs a call observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient constructs a client rooted at baseURL (e.g. http://127.0.0.1:8000/api).
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL exposes the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

type call struct {
	resource    string
	method      string
	url         string
	body        io.Reader
	contentType string
}

// do executes the call. A non-2xx response is returned together with a
// *StatusError so callers may inspect the body before it is closed.
func (c *Client) do(ctx context.Context, in call) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, in.method, in.url, in.body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if in.contentType != "" {
		req.Header.Set("Content-Type", in.contentType)
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		req.Header.Set(requestIDHeader, reqID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(in, 0, start)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, in.method, in.url, err)
	}
	c.observe(in, resp.StatusCode, start)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, &StatusError{Method: in.method, URL: in.url, Code: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) observe(in call, code int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveBackend(in.resource, in.method, code, time.Since(start))
	}
}

// fetchJSON performs the call and decodes a 2xx body into dest. When
// allowEmpty is set an empty body leaves dest untouched.
func (c *Client) fetchJSON(ctx context.Context, in call, dest any, allowEmpty bool) error {
	resp, err := c.do(ctx, in)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		return err
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: %s %s: empty body", ErrDecode, in.method, in.url)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, in.method, in.url, err)
	}
	return nil
}

func jsonBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("apiclient: encode body: %w", err)
	}
	return bytes.NewReader(raw), nil
}
