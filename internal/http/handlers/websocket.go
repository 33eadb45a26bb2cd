package handlers

import (
	"net/http"

	"imagetags/internal/auth"
	"imagetags/internal/services"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler streams batch progress events to admin sessions
type WebSocketHandler struct {
	authService *auth.Service
	hub         *services.ProgressHub
	upgrader    websocket.Upgrader
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(authService *auth.Service, hub *services.ProgressHub) *WebSocketHandler {
	return &WebSocketHandler{
		authService: authService,
		hub:         hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleProgress upgrades the connection and subscribes it to the
// progress hub until the client disconnects. Browsers cannot set an
// Authorization header on a websocket, so the token rides in the
// query string.
func (h *WebSocketHandler) HandleProgress(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing token"})
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil || claims.Type != "access" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
	}
	if claims.Role != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Insufficient permissions"})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return err
	}
	defer conn.Close()

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	log.Debug().Str("user", claims.Email).Msg("Progress stream connected")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
