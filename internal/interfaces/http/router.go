// Package http assembles the gin engine: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authuc "helpdesk/internal/application/auth/usecases"
	messageuc "helpdesk/internal/application/message/usecases"
	ticketuc "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/adapters"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/realtime"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter wires the full HTTP surface. The publisher carries mutation
// events to the realtime hub; pass ticket.NopPublisher when no hub runs.
func NewRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	hub *realtime.Hub,
	publisher ticket.Publisher,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	window := time.Duration(constants.RateLimitWindowMinutes) * time.Minute
	generalLimiter := middleware.NewRateLimiter(redisClient, constants.GeneralRateLimit, window, "general")
	authLimiter := middleware.NewRateLimiter(redisClient, constants.AuthRateLimit, window, "auth")
	engine.Use(generalLimiter.Limit())

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	issuer := adapters.NewTokenIssuerAdapter(jwtService)

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)

	authHandler := handlers.NewAuthHandler(
		authuc.NewRegisterUseCase(userRepo, hasher, issuer, log),
		authuc.NewLoginUseCase(userRepo, hasher, issuer, log),
		authuc.NewRefreshUseCase(userRepo, issuer, log),
	)
	ticketHandler := handlers.NewTicketHandler(
		ticketuc.NewCreateTicketUseCase(ticketRepo, userRepo, publisher, log),
		ticketuc.NewGetTicketUseCase(ticketRepo, userRepo, log),
		ticketuc.NewListTicketsUseCase(ticketRepo, userRepo, log),
		ticketuc.NewSearchTicketsUseCase(ticketRepo, userRepo, log),
		ticketuc.NewUpdateTicketUseCase(ticketRepo, userRepo, publisher, log),
		ticketuc.NewDeleteTicketUseCase(ticketRepo, messageRepo, log),
	)
	messageHandler := handlers.NewMessageHandler(
		messageuc.NewCreateMessageUseCase(messageRepo, ticketRepo, userRepo, publisher, log),
		messageuc.NewListMessagesUseCase(messageRepo, ticketRepo, userRepo, log),
		messageuc.NewUpdateMessageUseCase(messageRepo, ticketRepo, userRepo, log),
		messageuc.NewDeleteMessageUseCase(messageRepo, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:     authHandler,
		AuthRateLimiter: authLimiter,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		MessageHandler: messageHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupMessageRoutes(engine, &routes.MessageRouteConfig{
		MessageHandler: messageHandler,
		AuthMiddleware: authMiddleware,
	})

	if hub != nil {
		realtimeHandler := handlers.NewRealtimeHandler(hub, jwtService, cfg.Server.AllowedOrigins)
		engine.GET("/ws", realtimeHandler.Serve)
	}

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "helpdesk",
			"status": "ok",
		})
	})

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
