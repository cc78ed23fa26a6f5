package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
)

// DefaultRequestTimeout is used when Options doesn't specify one.
const DefaultRequestTimeout = 30 * time.Second

// ErrMissingEndpoint is returned by New when no endpoint is given.
var ErrMissingEndpoint = errors.New("missing SoroScan API endpoint")

// Client executes calls against the SoroScan HTTP API. It holds no mutable
// state besides the underlying connection pool and is safe for concurrent use
// from multiple goroutines. Each call is a single request, there are no
// retries or caching at this level.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	opts     Options
}

// Options defines options for the API client. All values are optional.
type Options struct {
	// APIKey is the bearer credential sent with every request. Leave empty
	// for anonymous access.
	APIKey string
	// RequestTimeout bounds every single call, DefaultRequestTimeout is used
	// when unset. The per-call context can cut it shorter.
	RequestTimeout time.Duration
	// Client overrides the HTTP client used for requests.
	Client *http.Client
}

// New returns a new Client ready to use. A trailing slash of the endpoint is
// ignored, paths are always joined with exactly one separator.
func New(endpoint string, opts Options) (*Client, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	httpClient := opts.Client
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		cli:      httpClient,
		endpoint: u,
		opts:     opts,
	}, nil
}

// Endpoint returns the configured API endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// performRequest executes a single round-trip against the API and decodes the
// response into result (which must be a pointer, or nil when no body is
// expected). Server-reported failures come back as *soroapi.Error, an elapsed
// request timeout as *TimeoutError and anything below the HTTP layer as-is.
func (c *Client) performRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	rctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	// The path may contain percent-encoded segments, so the URL is assembled
	// textually instead of through url.URL.Path (which holds decoded paths
	// and would re-encode the escapes).
	urlStr := c.endpoint.String() + path
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		rd = buf
	}

	req, err := http.NewRequestWithContext(rctx, method, urlStr, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			// Our own timer fired, not the caller's context.
			return &TimeoutError{Duration: c.opts.RequestTimeout}
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := new(soroapi.Error)
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Code == "" {
			return soroapi.NewUnknownError(resp.StatusCode)
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}
	if result == nil {
		return nil
	}
	// The server's shape is trusted here: a success body that fails to parse
	// leaves the result at its zero value rather than failing the call.
	_ = json.Unmarshal(raw, result)
	return nil
}

// TimeoutError is returned when the configured request timeout elapses before
// the server responds. Cancellation through the caller's own context is
// reported as that context's error instead.
type TimeoutError struct {
	// Duration is the configured request timeout.
	Duration time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Duration)
}

// Unwrap makes the error match context.DeadlineExceeded via errors.Is.
func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}
