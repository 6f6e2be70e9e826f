package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type MessageRouteConfig struct {
	MessageHandler *handlers.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupMessageRoutes(engine *gin.Engine, config *MessageRouteConfig) {
	messages := engine.Group("/messages")
	messages.Use(config.AuthMiddleware.RequireAuth())
	{
		// The message routes are mounted under /messages, so the ticket
		// thread lives at /messages/tickets/:id/messages. The shorter
		// /tickets/:id/messages aliases are registered with the ticket
		// routes.
		messages.POST("/tickets/:id/messages", config.MessageHandler.CreateMessage)
		messages.GET("/tickets/:id/messages", config.MessageHandler.ListMessages)

		messages.PUT("/:id", config.MessageHandler.UpdateMessage)
		messages.DELETE("/:id", config.MessageHandler.DeleteMessage)
	}
}
