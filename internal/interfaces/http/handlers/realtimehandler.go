package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/realtime"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// RealtimeHandler upgrades authenticated requests to WebSocket connections
// and hands them to the hub.
type RealtimeHandler struct {
	hub        *realtime.Hub
	jwtService *auth.JWTService
	upgrader   websocket.Upgrader
	logger     logger.Interface
}

func NewRealtimeHandler(hub *realtime.Hub, jwtService *auth.JWTService, allowedOrigins []string) *RealtimeHandler {
	return &RealtimeHandler{
		hub:        hub,
		jwtService: jwtService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
		logger: logger.NewLogger(),
	}
}

// Serve handles GET /ws. Browsers cannot set headers on WebSocket requests,
// so a `token` query parameter is accepted alongside the Authorization header.
func (h *RealtimeHandler) Serve(c *gin.Context) {
	token := wsToken(c)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token required")
		return
	}

	claims, err := h.jwtService.Verify(token)
	if err != nil || claims.TokenType != auth.TokenTypeAccess {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	client := realtime.NewClient(h.hub, conn, claims.UserID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

func wsToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Query("token")
}
