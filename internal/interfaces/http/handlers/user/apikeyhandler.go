package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// APIKeyHandler manages the per-account API key. Its routes are mounted
// behind RequireSession so a leaked key cannot mint its own successor.
type APIKeyHandler struct {
	getAPIKeyUC      usecases.GetAPIKeyExecutor
	generateAPIKeyUC usecases.GenerateAPIKeyExecutor
	revokeAPIKeyUC   usecases.RevokeAPIKeyExecutor
	logger           logger.Interface
}

func NewAPIKeyHandler(
	getAPIKeyUC usecases.GetAPIKeyExecutor,
	generateAPIKeyUC usecases.GenerateAPIKeyExecutor,
	revokeAPIKeyUC usecases.RevokeAPIKeyExecutor,
	log logger.Interface,
) *APIKeyHandler {
	return &APIKeyHandler{
		getAPIKeyUC:      getAPIKeyUC,
		generateAPIKeyUC: generateAPIKeyUC,
		revokeAPIKeyUC:   revokeAPIKeyUC,
		logger:           log,
	}
}

// GetAPIKey handles GET /user/api-key. Returns null when no key is set.
func (h *APIKeyHandler) GetAPIKey(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	key, err := h.getAPIKeyUC.Execute(c.Request.Context(), usecases.GetAPIKeyQuery{UserID: principal.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"apiKey": key})
}

// GenerateAPIKey handles POST /user/api-key. Any previous key stops
// resolving the moment the new one is stored.
func (h *APIKeyHandler) GenerateAPIKey(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	key, err := h.generateAPIKeyUC.Execute(c.Request.Context(), usecases.GenerateAPIKeyCommand{UserID: principal.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("api key regenerated", "user_id", principal.ID)
	utils.DataResponse(c, http.StatusOK, gin.H{"apiKey": key})
}

// RevokeAPIKey handles DELETE /user/api-key
func (h *APIKeyHandler) RevokeAPIKey(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	if err := h.revokeAPIKeyUC.Execute(c.Request.Context(), usecases.RevokeAPIKeyCommand{UserID: principal.ID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "API key revoked successfully")
}
