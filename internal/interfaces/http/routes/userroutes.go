package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	APIKeyHandler  *userhandlers.APIKeyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes mounts account self-management. API-key routes demand a
// session so a leaked key cannot rotate or inspect itself.
func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	user := engine.Group("/user")
	user.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireSession())
	{
		user.GET("/api-key", config.APIKeyHandler.GetAPIKey)
		user.POST("/api-key", config.APIKeyHandler.GenerateAPIKey)
		user.DELETE("/api-key", config.APIKeyHandler.RevokeAPIKey)
	}
}
