package routes

import (
	"github.com/gin-gonic/gin"

	platformhandlers "helpdesk/internal/interfaces/http/handlers/platform"
	"helpdesk/internal/interfaces/http/middleware"
)

type PlatformRouteConfig struct {
	PlatformHandler *platformhandlers.PlatformHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupPlatformRoutes mounts the agent and RAG proxy. Callers authenticate
// to this service normally and additionally carry their own platform key.
func SetupPlatformRoutes(engine *gin.Engine, config *PlatformRouteConfig) {
	agents := engine.Group("/agents")
	agents.Use(config.AuthMiddleware.RequireAuth())
	{
		agents.GET("", config.PlatformHandler.ListAgents)
		agents.POST("", config.PlatformHandler.CreateAgent)

		agents.POST("/:id/chat", config.PlatformHandler.Chat)

		agents.GET("/:id", config.PlatformHandler.GetAgent)
		agents.PUT("/:id", config.PlatformHandler.UpdateAgent)
		agents.DELETE("/:id", config.PlatformHandler.DeleteAgent)
	}

	rag := engine.Group("/rag")
	rag.Use(config.AuthMiddleware.RequireAuth())
	{
		rag.GET("", config.PlatformHandler.ListRAGConfigs)
		rag.POST("", config.PlatformHandler.CreateRAGConfig)

		rag.POST("/:id/documents", config.PlatformHandler.IngestDocument)

		rag.GET("/:id", config.PlatformHandler.GetRAGConfig)
		rag.PUT("/:id", config.PlatformHandler.UpdateRAGConfig)
		rag.DELETE("/:id", config.PlatformHandler.DeleteRAGConfig)
	}
}
