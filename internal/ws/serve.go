package ws

import (
	"log"
	"net/http"
	"strings"

	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/service"
	"socialnet/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS authenticates the caller, authorizes the requested room, upgrades
// the connection and starts the pumps. The friendship check happens here,
// before the upgrade: a room the caller is not part of, or whose pair is
// not friends, never reaches message exchange.
func ServeWS(h *hub.Hub, chatSvc *service.ChatService, c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}
	userID, err := jwt.ParseUserID(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	room := c.Param("room")
	otherID, err := chatSvc.AuthorizeRoom(c.Request.Context(), userID, room)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request."})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(hub.Client, 256),
		room:    room,
		userID:  userID,
		otherID: otherID,
		chatSvc: chatSvc,
	}

	h.Subscribe(room, client.send)
	go client.writePump()
	go client.readPump()
}

// bearerToken extracts the JWT from the Authorization header or, for
// browser websocket clients that cannot set headers, the token query
// parameter.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}
