// Package lyzr is a client for the Lyzr agent and RAG platform APIs.
package lyzr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultAgentBaseURL is the production agent API endpoint.
	DefaultAgentBaseURL = "https://agent-prod.studio.lyzr.ai/v3"

	// DefaultRAGBaseURL is the production RAG API endpoint.
	DefaultRAGBaseURL = "https://rag-prod.studio.lyzr.ai/v3"
)

// APIError is a non-2xx platform response. Message carries the upstream
// error body's "message" field when the platform provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform error: status=%d message=%s", e.StatusCode, e.Message)
}

// Client is the platform API client. Every request authenticates with the
// caller's platform key via the x-api-key header.
type Client struct {
	agentBaseURL string
	ragBaseURL   string
	apiKey       string
	httpClient   *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithAgentBaseURL overrides the agent API endpoint.
func WithAgentBaseURL(url string) Option {
	return func(client *Client) {
		client.agentBaseURL = url
	}
}

// WithRAGBaseURL overrides the RAG API endpoint.
func WithRAGBaseURL(url string) Option {
	return func(client *Client) {
		client.ragBaseURL = url
	}
}

// NewClient creates a new platform client for the given key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		agentBaseURL: DefaultAgentBaseURL,
		ragBaseURL:   DefaultRAGBaseURL,
		apiKey:       apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON performs a JSON request and decodes the response into result.
func (c *Client) doJSON(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, result)
}

// send executes a prepared request, maps non-2xx responses to *APIError,
// and decodes a 2xx body into result when provided.
func (c *Client) send(req *http.Request, result any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// newAPIError extracts the upstream "message" field when the error body is
// JSON; otherwise the error carries only the status.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: statusCode, Message: fmt.Sprintf("request failed with status %d", statusCode)}
}
