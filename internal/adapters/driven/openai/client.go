// Package openai provides chat and embedding service adapters for any
// OpenAI-compatible HTTP API. Both services share the same endpoint,
// credentials and rate limiter.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 120 * time.Second
)

// apiError is the error object OpenAI-compatible APIs embed in response
// bodies, including on non-2xx statuses.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// client is the HTTP plumbing shared by the chat and embedding services.
type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *RateLimiter
}

func newClient(apiKey, baseURL string, timeout time.Duration, limiter *RateLimiter) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if limiter == nil {
		limiter = NewRateLimiter(RateLimitConfig{})
	}
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: limiter,
	}
}

// postJSON sends the payload to the endpoint path and returns the status
// code and raw response body. A 429 response feeds the Retry-After value
// back into the rate limiter before returning.
func (c *client) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(retryAfterSeconds(resp.Header))
	}
	return resp.StatusCode, body, nil
}

// ping validates the endpoint is reachable and the API key is accepted by
// checking the /models endpoint. No inference is run.
func (c *client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("openai: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// retryAfterSeconds parses a Retry-After header, returning 0 when absent
// or unparseable so the limiter falls back to its default backoff.
func retryAfterSeconds(h http.Header) int {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	seconds, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return seconds
}
