// Package serp wraps the Serp API Google Events engine used to pull
// upcoming shows for artists from the open web.
package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client Serp API 客户端
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient 创建新的API客户端
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
	}
}

// SetTimeout 设置请求超时时间
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// EventResult is one entry of the events_results array. Every field is
// optional; the search engine fills in whatever it scraped.
type EventResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Venue       struct {
		Name string `json:"name"`
	} `json:"venue"`
	Address []string `json:"address"`
	Date    struct {
		StartDate string `json:"start_date"`
		When      string `json:"when"`
	} `json:"date"`
}

type searchResponse struct {
	Error         string        `json:"error"`
	EventsResults []EventResult `json:"events_results"`
}

// SearchEvents runs a google_events query, optionally scoped to a location.
func (c *Client) SearchEvents(ctx context.Context, query, location string) ([]EventResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("serp API key not configured")
	}

	q := query
	if q == "" {
		q = "events"
	}

	params := url.Values{}
	params.Set("engine", "google_events")
	params.Set("q", q)
	params.Set("api_key", c.apiKey)
	params.Set("gl", "us")
	params.Set("hl", "en")
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build serp request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serp request failed: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode serp response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("serp API error: %s", body.Error)
	}

	return body.EventsResults, nil
}
