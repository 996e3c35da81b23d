// Package tui is the terminal dashboard client. It renders the summary
// statistics the HTTP API serves: quotation totals, the price histogram,
// top providers and brands, and the event summary.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/opsboard/opsboard/internal/model"
)

// Client is a thin consumer of the dashboard HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:3000".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// QuotationStats is the decoded quotation stats response.
type QuotationStats struct {
	Statistics   model.Statistics    `json:"statistics"`
	TopProviders []model.TopCount    `json:"top_providers"`
	TopBrands    []model.TopCount    `json:"top_brands"`
	Histogram    []model.PriceBucket `json:"histogram"`
}

// EventStats is the decoded event stats response.
type EventStats struct {
	Statistics model.EventStatistics `json:"statistics"`
}

// PipelineHealth is one pipeline's entry of the health response.
type PipelineHealth struct {
	Loaded bool   `json:"loaded"`
	Source string `json:"source"`
	Rows   int    `json:"rows"`
}

// Health is the decoded health response.
type Health struct {
	Status    string                    `json:"status"`
	Uptime    string                    `json:"uptime"`
	Pipelines map[string]PipelineHealth `json:"pipelines"`
}

// QuotationStats fetches the quotation summary, optionally narrowed by a
// free-text search term.
func (c *Client) QuotationStats(ctx context.Context, search string) (QuotationStats, error) {
	path := "/api/quotations/stats"
	if search != "" {
		path += "?q=" + url.QueryEscape(search)
	}
	var out QuotationStats
	err := c.getJSON(ctx, path, &out)
	return out, err
}

// EventStats fetches the event summary.
func (c *Client) EventStats(ctx context.Context) (EventStats, error) {
	var out EventStats
	err := c.getJSON(ctx, "/api/events/stats", &out)
	return out, err
}

// Health fetches the service health summary.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.getJSON(ctx, "/api/health", &out)
	return out, err
}

// Refresh asks the service to reload both datasets from their sources.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/refresh", nil)
	if err != nil {
		return fmt.Errorf("tui: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tui: refresh: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tui: refresh: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("tui: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tui: get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tui: get %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tui: decode %s: %w", path, err)
	}
	return nil
}
