package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	infraauth "helpdesk/internal/infrastructure/auth"
	sharedauth "helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// CredentialResolver attempts to authenticate a request from one credential
// channel. Returning false means "no credential here, try the next one" —
// a resolver never fails the request itself.
type CredentialResolver interface {
	Resolve(c *gin.Context) (*sharedauth.Principal, bool)
}

// APIKeyResolver authenticates `tk_`-prefixed keys from the x-api-key
// header, falling back to the api_key query parameter.
type APIKeyResolver struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewAPIKeyResolver(userRepo user.UserRepository, logger logger.Interface) *APIKeyResolver {
	return &APIKeyResolver{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (r *APIKeyResolver) Resolve(c *gin.Context) (*sharedauth.Principal, bool) {
	// Header wins over query when both are present.
	key := c.GetHeader("x-api-key")
	if key == "" {
		key = c.Query("api_key")
	}
	if !id.HasAPIKeyShape(key) {
		return nil, false
	}

	account, err := r.userRepo.FindByAPIKey(c.Request.Context(), key)
	if err != nil {
		r.logger.Debugw("api key did not resolve", "error", err)
		return nil, false
	}

	return &sharedauth.Principal{
		ID:    account.ID(),
		Name:  account.Name(),
		Email: account.Email(),
		Mode:  sharedauth.ModeAPIKey,
	}, true
}

// SessionResolver authenticates the access-token cookie: the JWT must
// verify as an access token and its session row must still exist and be
// unexpired.
type SessionResolver struct {
	jwtService  *infraauth.JWTService
	sessionRepo user.SessionRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewSessionResolver(
	jwtService *infraauth.JWTService,
	sessionRepo user.SessionRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *SessionResolver {
	return &SessionResolver{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (r *SessionResolver) Resolve(c *gin.Context) (*sharedauth.Principal, bool) {
	token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)
	if token == "" {
		return nil, false
	}

	claims, err := r.jwtService.VerifyAccess(token)
	if err != nil {
		r.logger.Warnw("failed to verify access token", "error", err)
		return nil, false
	}

	session, err := r.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
	if err != nil {
		r.logger.Warnw("session lookup failed", "error", err, "session_id", claims.SessionID)
		return nil, false
	}
	if session.IsExpired(biztime.NowUTC()) {
		r.logger.Debugw("session expired", "session_id", session.ID())
		return nil, false
	}

	account, err := r.userRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		r.logger.Warnw("user lookup failed", "error", err, "user_id", claims.UserID)
		return nil, false
	}

	c.Set("session_id", session.ID())

	return &sharedauth.Principal{
		ID:    account.ID(),
		Name:  account.Name(),
		Email: account.Email(),
		Mode:  sharedauth.ModeSession,
	}, true
}

// AuthMiddleware guards routes with an ordered resolver chain; the first
// resolver that produces a principal wins.
type AuthMiddleware struct {
	resolvers []CredentialResolver
	logger    logger.Interface
}

func NewAuthMiddleware(logger logger.Interface, resolvers ...CredentialResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolvers: resolvers,
		logger:    logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, resolver := range m.resolvers {
			if principal, ok := resolver.Resolve(c); ok {
				sharedauth.Set(c, principal)
				c.Set("user_id", principal.ID)
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
	}
}

// RequireSession rejects API-key principals. Key management must not be
// reachable with the key itself.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := sharedauth.FromContext(c)
		if !ok || principal.IsAPIKey() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
