package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/docshare/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/docshare/internal/pkg/newrelic"
)

// HTTPError is a 5xx answer from the remote service
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// Client is an outbound HTTP client with a bounded timeout and a circuit breaker.
// It does not retry.
type Client struct {
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a client for one upstream
func NewClient(name string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig(name)),
	}
}

// NewClientWith builds a client around an existing http.Client; used by tests
func NewClientWith(httpClient *http.Client, breaker *circuitbreaker.CircuitBreaker) *Client {
	return &Client{httpClient: httpClient, breaker: breaker}
}

// Do sends req. Transport errors and 5xx responses count against the breaker;
// other statuses are returned to the caller untouched.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		req = req.WithContext(ctx)

		seg := nrpkg.StartExternalSegment(ctx, req)
		r, err := c.httpClient.Do(req)
		if seg != nil {
			seg.Response = r
			seg.End()
		}
		if err != nil {
			return err
		}

		if r.StatusCode >= 500 {
			body, _ := io.ReadAll(io.LimitReader(r.Body, 4096))
			r.Body.Close()
			return &HTTPError{StatusCode: r.StatusCode, Body: string(body)}
		}

		resp = r
		return nil
	})

	return resp, err
}

// PostForm sends an url-encoded form with basic auth
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values, username, password string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(username, password)

	return c.Do(ctx, req)
}

// BreakerStats reports the breaker state for health endpoints
func (c *Client) BreakerStats() circuitbreaker.Stats {
	return c.breaker.Stats()
}

// IsUnavailable reports whether err means the upstream could not be reached in time
func IsUnavailable(err error) bool {
	var httpErr *HTTPError
	return errors.Is(err, circuitbreaker.ErrOpen) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &httpErr) ||
		isTimeout(err)
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
