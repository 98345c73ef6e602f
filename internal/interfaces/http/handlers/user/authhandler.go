package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	refreshUC  usecases.RefreshTokenExecutor
	logoutUC   usecases.LogoutExecutor
	meUC       usecases.GetCurrentUserExecutor
	authConfig config.AuthConfig
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	logoutUC usecases.LogoutExecutor,
	meUC usecases.GetCurrentUserExecutor,
	authConfig config.AuthConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logoutUC:   logoutUC,
		meUC:       meUC,
		authConfig: authConfig,
		logger:     log,
	}
}

func (h *AuthHandler) accessMaxAge() int {
	return h.authConfig.JWT.AccessExpMinutes * 60
}

func (h *AuthHandler) refreshMaxAge() int {
	return h.authConfig.JWT.RefreshExpDays * 24 * 60 * 60
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusCreated, gin.H{"user": result})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.authConfig.Cookie,
		result.Tokens.AccessToken, result.Tokens.RefreshToken,
		h.accessMaxAge(), h.refreshMaxAge())

	utils.DataResponse(c, http.StatusOK, gin.H{"user": result.User})
}

// Refresh handles POST /auth/refresh. The refresh token travels in an
// HttpOnly cookie, never in the request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	tokens, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: refreshToken})
	if err != nil {
		utils.ClearAuthCookies(c, h.authConfig.Cookie)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.authConfig.Cookie,
		tokens.AccessToken, tokens.RefreshToken,
		h.accessMaxAge(), h.refreshMaxAge())

	utils.MessageResponse(c, http.StatusOK, "Token refreshed successfully")
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Get("session_id")
	sessionIDStr, _ := sessionID.(string)

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionIDStr}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAuthCookies(c, h.authConfig.Cookie)
	utils.MessageResponse(c, http.StatusOK, "Logged out successfully")
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, _ := auth.FromContext(c)

	result, err := h.meUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{UserID: principal.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"user": result})
}
