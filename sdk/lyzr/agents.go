package lyzr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListAgents retrieves all agents visible to the platform key.
func (c *Client) ListAgents(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, c.agentBaseURL+"/agents/", nil, &result); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return result, nil
}

// CreateAgent creates an agent from the given payload. The payload is
// passed through untouched so callers control the full platform schema.
func (c *Client) CreateAgent(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, c.agentBaseURL+"/agents/", payload, &result); err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	return result, nil
}

// GetAgent retrieves a single agent by ID.
func (c *Client) GetAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/agents/%s", c.agentBaseURL, url.PathEscape(agentID))
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return result, nil
}

// UpdateAgent updates an agent with the given payload.
func (c *Client) UpdateAgent(ctx context.Context, agentID string, payload json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/agents/%s", c.agentBaseURL, url.PathEscape(agentID))
	if err := c.doJSON(ctx, http.MethodPut, u, payload, &result); err != nil {
		return nil, fmt.Errorf("update agent: %w", err)
	}
	return result, nil
}

// DeleteAgent removes an agent.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/agents/%s", c.agentBaseURL, url.PathEscape(agentID))
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &result); err != nil {
		return nil, fmt.Errorf("delete agent: %w", err)
	}
	return result, nil
}

// ChatRequest is a message sent to an agent's inference endpoint.
type ChatRequest struct {
	UserID    string          `json:"user_id"`
	AgentID   string          `json:"agent_id"`
	SessionID string          `json:"session_id"`
	Message   string          `json:"message"`
	Assets    []string        `json:"assets,omitempty"`
	Features  json.RawMessage `json:"features,omitempty"`
}

// Chat sends a message to an agent and returns the raw inference response.
func (c *Client) Chat(ctx context.Context, chat *ChatRequest) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, c.agentBaseURL+"/inference/chat/", chat, &result); err != nil {
		return nil, fmt.Errorf("chat with agent: %w", err)
	}
	return result, nil
}
