package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/services"
	"cofoundr_backend/pkg/contextkeys"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Auth happens via the bearer token, not the Origin header.
		return true
	},
}

type Handler struct {
	manager      *Manager
	conversation services.ConversationService
}

func NewHandler(manager *Manager, conversation services.ConversationService) *Handler {
	return &Handler{manager: manager, conversation: conversation}
}

// ServeWS upgrades an authenticated request to a websocket connection. Auth
// middleware runs before this, so a missing user id means a broken pipeline
// rather than a client error.
func (h *Handler) ServeWS(c *gin.Context) {
	userID, ok := contextkeys.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("websocket upgrade failed", "user_id", userID)
		return
	}

	client := &Client{
		UserID:       userID,
		Conn:         conn,
		Send:         make(chan services.Event, 256),
		manager:      h.manager,
		conversation: h.conversation,
	}
	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
