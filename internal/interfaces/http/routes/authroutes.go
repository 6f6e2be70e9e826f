// Package routes registers the HTTP route groups.
package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthRateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	authGroup := engine.Group("/auth")
	if config.AuthRateLimiter != nil {
		authGroup.Use(config.AuthRateLimiter.Limit())
	}
	{
		authGroup.POST("/register", config.AuthHandler.Register)
		authGroup.POST("/login", config.AuthHandler.Login)
		authGroup.POST("/refresh", config.AuthHandler.Refresh)
		authGroup.POST("/logout", config.AuthHandler.Logout)
	}
}
