// Package platform proxies agent and RAG operations to the external
// platform. The caller supplies their own platform key per request; the
// service holds no platform credentials of its own.
package platform

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
	"helpdesk/sdk/lyzr"
)

const platformKeyHeader = "X-Platform-Key"

type PlatformHandler struct {
	newClient func(apiKey string) *lyzr.Client
	logger    logger.Interface
}

func NewPlatformHandler(cfg config.PlatformConfig, log logger.Interface) *PlatformHandler {
	return &PlatformHandler{
		newClient: func(apiKey string) *lyzr.Client {
			return lyzr.NewClient(apiKey,
				lyzr.WithAgentBaseURL(cfg.AgentBaseURL),
				lyzr.WithRAGBaseURL(cfg.RAGBaseURL),
				lyzr.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			)
		},
		logger: log,
	}
}

// client builds a per-request platform client from the caller's key.
// Returns false (response already written) when the header is absent.
func (h *PlatformHandler) client(c *gin.Context) (*lyzr.Client, bool) {
	key := c.GetHeader(platformKeyHeader)
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Platform key is required")
		return nil, false
	}
	return h.newClient(key), true
}

// respondUpstreamError converts a platform client failure into the
// caller-facing error body. Platform rejections keep their upstream
// message under a 502; anything else is a generic 500.
func (h *PlatformHandler) respondUpstreamError(c *gin.Context, err error) {
	var apiErr *lyzr.APIError
	if stderrors.As(err, &apiErr) {
		h.logger.Warnw("platform request rejected", "status", apiErr.StatusCode, "message", apiErr.Message)
		utils.ErrorResponseWithError(c, errors.NewUpstreamError(apiErr.Message))
		return
	}
	h.logger.Errorw("platform request failed", "error", err)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

func rawJSON(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json; charset=utf-8", body)
}

// ListAgents handles GET /agents
func (h *PlatformHandler) ListAgents(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.ListAgents(c.Request.Context())
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// CreateAgent handles POST /agents
func (h *PlatformHandler) CreateAgent(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Agent payload is required")
		return
	}

	result, err := client.CreateAgent(c.Request.Context(), payload)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusCreated, result)
}

// GetAgent handles GET /agents/:id
func (h *PlatformHandler) GetAgent(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// UpdateAgent handles PUT /agents/:id
func (h *PlatformHandler) UpdateAgent(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Agent payload is required")
		return
	}

	result, err := client.UpdateAgent(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// DeleteAgent handles DELETE /agents/:id
func (h *PlatformHandler) DeleteAgent(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.DeleteAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// Chat handles POST /agents/:id/chat
func (h *PlatformHandler) Chat(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	var req lyzr.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Chat message is required")
		return
	}
	req.AgentID = c.Param("id")

	result, err := client.Chat(c.Request.Context(), &req)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// ListRAGConfigs handles GET /rag. The platform scopes collections to the
// key owner, so the key doubles as the platform user ID.
func (h *PlatformHandler) ListRAGConfigs(c *gin.Context) {
	key := c.GetHeader(platformKeyHeader)
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.ListRAGConfigs(c.Request.Context(), key)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// CreateRAGConfig handles POST /rag
func (h *PlatformHandler) CreateRAGConfig(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "RAG config payload is required")
		return
	}

	result, err := client.CreateRAGConfig(c.Request.Context(), payload)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusCreated, result)
}

// GetRAGConfig handles GET /rag/:id
func (h *PlatformHandler) GetRAGConfig(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.GetRAGConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// UpdateRAGConfig handles PUT /rag/:id
func (h *PlatformHandler) UpdateRAGConfig(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "RAG config payload is required")
		return
	}

	result, err := client.UpdateRAGConfig(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// DeleteRAGConfig handles DELETE /rag/:id
func (h *PlatformHandler) DeleteRAGConfig(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	result, err := client.DeleteRAGConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}
	rawJSON(c, http.StatusOK, result)
}

// IngestDocument handles POST /rag/:id/documents. The uploaded file is
// parsed by the platform first, then the parsed chunks are trained into
// the collection; both phase results are returned.
func (h *PlatformHandler) IngestDocument(c *gin.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Document file is required")
		return
	}

	if _, err := lyzr.ParserForFile(fileHeader.Filename); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unsupported document type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded document", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	result, err := client.IngestDocument(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		h.respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
