package apiclient

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

	"github.com/rs/zerolog"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/navigation"
)

// ErrNoBaseURL is returned by New when the API base URL is empty.
var ErrNoBaseURL = errors.New("api base URL is required")

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is the HTTP adapter shared by all gateways.
type Client struct {
	base    string
	http    *http.Client
	tokens  domain.TokenSource
	nav     domain.Navigator
	metrics *Metrics
	log     zerolog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithNavigator sets the router used for the login redirect on 401.
func WithNavigator(nav domain.Navigator) Option {
	return func(c *Client) { c.nav = nav }
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a client for baseURL. Trailing slashes are trimmed; tokens may
// be nil for unauthenticated use.
func New(baseURL string, tokens domain.TokenSource, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, ErrNoBaseURL
	}
	c := &Client{
		base:   base,
		http:   http.DefaultClient,
		tokens: tokens,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string { return c.base }

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Send(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Send(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Send(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Send(ctx, http.MethodDelete, path, nil, nil)
}

// Send performs one request. body is JSON-encoded when non-nil.
func (c *Client) Send(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	var rdr io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = buf
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(method, "error", time.Since(start))
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.observe(method, strconv.Itoa(resp.StatusCode), elapsed)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("api request")

	if resp.StatusCode == http.StatusUnauthorized {
		c.revokeSession()
		return nil, newHTTPError(method, path, resp.StatusCode, b)
	}
	if resp.StatusCode/100 != 2 {
		return nil, newHTTPError(method, path, resp.StatusCode, b)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// revokeSession clears the stored credentials and sends the console to the
// login screen unless it is already on an authentication route.
func (c *Client) revokeSession() {
	c.metrics.sessionRevoked()
	if c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			c.log.Error().Err(err).Msg("clear session after 401")
		}
	}
	if c.nav == nil {
		return
	}
	if route := c.nav.CurrentRoute(); !navigation.IsAuthRoute(route) {
		c.log.Warn().Str("route", route).Msg("session rejected, redirecting to login")
		c.nav.Navigate(navigation.RouteLogin)
	}
}

// JoinPath joins segments into a path, escaping each one.
func JoinPath(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}
