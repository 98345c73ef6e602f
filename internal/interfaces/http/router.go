// Package http assembles the HTTP surface: repositories, use cases,
// handlers, middleware, and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	platformhandlers "helpdesk/internal/interfaces/http/handlers/platform"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"

	_ "helpdesk/docs"
)

// Router holds the gin engine and the wired handler set.
type Router struct {
	engine          *gin.Engine
	ticketHandler   *tickethandlers.TicketHandler
	authHandler     *userhandlers.AuthHandler
	apiKeyHandler   *userhandlers.APIKeyHandler
	platformHandler *platformhandlers.PlatformHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       gin.HandlerFunc
	cfg             *config.Config
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	passwordHasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenHasher := auth.NewSHA256TokenHasher()
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)

	registerUC := userusecases.NewRegisterWithPasswordUseCase(userRepo, passwordHasher, emailService, log)
	loginUC := userusecases.NewLoginWithPasswordUseCase(
		userRepo, sessionRepo, passwordHasher, jwtService, tokenHasher,
		cfg.Auth.Session.DefaultExpDays, log,
	)
	refreshUC := userusecases.NewRefreshTokenUseCase(sessionRepo, jwtService, tokenHasher, shareddb.NewTransactionManager(db), log)
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log)
	meUC := userusecases.NewGetCurrentUserUseCase(userRepo, log)
	getAPIKeyUC := userusecases.NewGetAPIKeyUseCase(userRepo, log)
	generateAPIKeyUC := userusecases.NewGenerateAPIKeyUseCase(userRepo, log)
	revokeAPIKeyUC := userusecases.NewRevokeAPIKeyUseCase(userRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC, log,
	)
	authHandler := userhandlers.NewAuthHandler(
		registerUC, loginUC, refreshUC, logoutUC, meUC, cfg.Auth, log,
	)
	apiKeyHandler := userhandlers.NewAPIKeyHandler(getAPIKeyUC, generateAPIKeyUC, revokeAPIKeyUC, log)
	platformHandler := platformhandlers.NewPlatformHandler(cfg.Platform, log)

	authMiddleware := middleware.NewAuthMiddleware(log,
		middleware.NewAPIKeyResolver(userRepo, log),
		middleware.NewSessionResolver(jwtService, sessionRepo, userRepo, log),
	)

	rateLimitMW := passThrough()
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.RateLimit(limiter, cfg.Auth.RateLimit, log)
	} else {
		log.Warnw("redis unavailable, auth rate limiting disabled")
	}

	return &Router{
		engine:          engine,
		ticketHandler:   ticketHandler,
		authHandler:     authHandler,
		apiKeyHandler:   apiKeyHandler,
		platformHandler: platformHandler,
		authMiddleware:  authMiddleware,
		rateLimit:       rateLimitMW,
		cfg:             cfg,
		logger:          log,
	}
}

func passThrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.rateLimit,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		APIKeyHandler:  r.apiKeyHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupPlatformRoutes(r.engine, &routes.PlatformRouteConfig{
		PlatformHandler: r.platformHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
