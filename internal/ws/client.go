package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

// Frame is the wire structure exchanged over the chat socket, in both
// directions: the client sends it, and after persisting the server echoes
// the same structure to every room member.
type Frame struct {
	Message          string `json:"message"`
	Username         string `json:"username"`
	ProfileImagePath string `json:"profile_image_path"`
}

type errorFrame struct {
	Error string `json:"error"`
}

// Client is one authenticated websocket connection joined to a room.
type Client struct {
	hub  *hub.Hub
	conn *websocket.Conn
	send hub.Client

	room    string
	userID  uint
	otherID uint

	chatSvc *service.ChatService
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.room, c.send)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			break
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.sendError("invalid_json")
			continue
		}

		// Persist first. A message that could not be stored is never
		// broadcast.
		if _, err := c.chatSvc.SaveMessage(context.Background(), c.userID, c.otherID, frame.Message); err != nil {
			c.sendError("send_failed")
			continue
		}

		payload, err := json.Marshal(frame)
		if err != nil {
			c.sendError("send_failed")
			continue
		}
		c.hub.Broadcast(c.room, payload)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker((pongWait * 9) / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(code string) {
	payload, _ := json.Marshal(errorFrame{Error: code})
	select {
	case c.send <- payload:
	default:
	}
}
