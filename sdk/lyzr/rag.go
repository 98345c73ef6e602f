package lyzr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListRAGConfigs retrieves the RAG collections owned by the given platform
// user.
func (c *Client) ListRAGConfigs(ctx context.Context, userID string) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/rag/user/%s", c.ragBaseURL, url.PathEscape(userID))
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("list rag configs: %w", err)
	}
	return result, nil
}

// CreateRAGConfig creates a RAG collection from the given payload.
func (c *Client) CreateRAGConfig(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, c.ragBaseURL+"/rag/", payload, &result); err != nil {
		return nil, fmt.Errorf("create rag config: %w", err)
	}
	return result, nil
}

// GetRAGConfig retrieves a RAG collection by ID.
func (c *Client) GetRAGConfig(ctx context.Context, ragID string) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/rag/%s", c.ragBaseURL, url.PathEscape(ragID))
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("get rag config: %w", err)
	}
	return result, nil
}

// UpdateRAGConfig updates a RAG collection with the given payload.
func (c *Client) UpdateRAGConfig(ctx context.Context, ragID string, payload json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/rag/%s", c.ragBaseURL, url.PathEscape(ragID))
	if err := c.doJSON(ctx, http.MethodPut, u, payload, &result); err != nil {
		return nil, fmt.Errorf("update rag config: %w", err)
	}
	return result, nil
}

// DeleteRAGConfig removes a RAG collection.
func (c *Client) DeleteRAGConfig(ctx context.Context, ragID string) (json.RawMessage, error) {
	var result json.RawMessage
	u := fmt.Sprintf("%s/rag/%s", c.ragBaseURL, url.PathEscape(ragID))
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &result); err != nil {
		return nil, fmt.Errorf("delete rag config: %w", err)
	}
	return result, nil
}
