// Package fetch retrieves published-CSV documents over HTTP.
//
// Fetch reports failures as explicit errors instead of silently degrading;
// the dataset store owns the decision to substitute fallback data, keeping
// the availability policy visible and testable.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single document fetch. The published sheets are
// small; anything slower than this is effectively down.
const DefaultTimeout = 30 * time.Second

// SourceError describes a failed fetch. Status is zero for transport
// errors.
type SourceError struct {
	URL    string
	Status int
	Err    error
}

func (e *SourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch: %s returned status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch: %s: %v", e.URL, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Client fetches one fixed CSV endpoint.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a client for the given endpoint. A zero timeout uses
// DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// Fetch retrieves the full response body as text. Any transport error or
// non-2xx status yields a *SourceError.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", &SourceError{URL: c.url, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &SourceError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &SourceError{URL: c.url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SourceError{URL: c.url, Err: err}
	}
	return string(body), nil
}
