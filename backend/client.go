package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"churchms/config"
)

// Client talks to the church backend REST API, which owns all persistence.
// This service never queries storage directly; schedule configuration and
// booking aggregates are fetched through here.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a backend client from the loaded AppConfig.
func NewClient() *Client {
	return &Client{
		baseURL: config.AppConfig.BackendBaseURL,
		apiKey:  config.AppConfig.BackendAPIKey,
		http: &http.Client{
			Timeout: time.Duration(config.AppConfig.BackendTimeoutMS) * time.Millisecond,
		},
	}
}

// Ping performs a cheap reachability check against the backend.
func (c *Client) Ping(ctx context.Context) error {
	var out json.RawMessage
	return c.get(ctx, "/health", nil, &out)
}

// get performs a GET against the backend and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("backend returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s failed: %w", path, err)
	}
	return nil
}
