// Package rpc implements the JSON-over-HTTP call client shared by every
// cross-service and partner integration. A call retries transient failures
// with exponential backoff; an error list inside an otherwise successful
// response counts as a failure too.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration // per attempt, independent of the retry budget
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Timeout:    10 * time.Second,
	}
}

// RemoteError is an application-level error reported by the remote service
// inside its response body.
type RemoteError struct {
	Message string `json:"message"`
}

func (e RemoteError) Error() string {
	return e.Message
}

// envelope is the optional response wrapper used by partner services: the
// payload under "data" with errors reported alongside it.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []RemoteError   `json:"errors"`
}

type Client struct {
	httpClient *http.Client
	policy     Policy
	token      string
}

func NewClient(policy Policy, token string) *Client {
	if policy.MaxRetries <= 0 {
		policy.MaxRetries = 1
	}
	return &Client{
		httpClient: &http.Client{},
		policy:     policy,
		token:      token,
	}
}

// Post sends payload as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, url string, payload, out interface{}) error {
	return c.call(ctx, http.MethodPost, url, payload, out)
}

// Get fetches url and decodes the response into out.
func (c *Client) Get(ctx context.Context, url string, out interface{}) error {
	return c.call(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) call(ctx context.Context, method, url string, payload, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt < c.policy.MaxRetries; attempt++ {
		err := c.attempt(ctx, method, url, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt < c.policy.MaxRetries-1 {
			delay := c.policy.BaseDelay * (1 << attempt)
			log.Printf("rpc: call to %s failed (attempt %d/%d), retrying in %s: %v",
				url, attempt+1, c.policy.MaxRetries, delay, err)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		} else {
			log.Printf("rpc: call to %s failed after %d attempts: %v", url, c.policy.MaxRetries, err)
		}
	}
	return lastErr
}

func (c *Client) attempt(ctx context.Context, method, url string, payload, out interface{}) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.policy.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s returned %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// A 200 carrying an error list is still a failed call.
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Errors) > 0 {
			messages := make([]string, 0, len(env.Errors))
			for _, remoteErr := range env.Errors {
				messages = append(messages, remoteErr.Message)
			}
			return RemoteError{Message: strings.Join(messages, ", ")}
		}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			raw = env.Data
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// WithFallback runs primary and, only after primary has exhausted its own
// retries, runs secondary. Call sites use it to fall back to a legacy query
// shape when a partner rejects the preferred one.
func WithFallback(primary, secondary func() error) error {
	err := primary()
	if err == nil {
		return nil
	}
	log.Printf("rpc: primary call failed, trying fallback: %v", err)
	return secondary()
}
