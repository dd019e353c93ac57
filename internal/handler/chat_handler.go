package handler

import (
	"net/http"
	"time"

	"socialnet/backend/internal/chat"
	"socialnet/backend/internal/service"
	"socialnet/backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// ChatMessageResponse defines the structure for one message in a
// conversation history.
type ChatMessageResponse struct {
	Content   string              `json:"content"`
	Sender    service.UserSummary `json:"sender"`
	Receiver  service.UserSummary `json:"receiver"`
	CreatedAt time.Time           `json:"created_at"`
}

// ChatHistoryResponse bundles a conversation history with the room name
// the client should open the socket on.
type ChatHistoryResponse struct {
	RoomName string                `json:"room_name"`
	Messages []ChatMessageResponse `json:"messages"`
}

// GetChatHistory godoc
// @Summary      Get chat history
// @Description  Returns the full message history between the caller and a friend, oldest first, plus the room name for the live socket. Fails for non-friends.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Other User ID"
// @Success      200  {object}  ChatHistoryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /chat/{id}/messages [get]
func (h *Handler) GetChatHistory(c *gin.Context) {
	viewerID := currentUserID(c)
	other, ok := targetID(c)
	if !ok {
		return
	}

	messages, err := h.Chat.History(c.Request.Context(), viewerID, other)
	if err != nil {
		respondError(c, err)
		return
	}

	response := ChatHistoryResponse{
		RoomName: chat.RoomName(viewerID, other),
		Messages: make([]ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		response.Messages = append(response.Messages, ChatMessageResponse{
			Content: msg.Content,
			Sender: service.UserSummary{
				ID:               msg.Sender.ID,
				Username:         msg.Sender.Username,
				ProfileImagePath: msg.Sender.ProfileImagePath,
			},
			Receiver: service.UserSummary{
				ID:               msg.Receiver.ID,
				Username:         msg.Receiver.Username,
				ProfileImagePath: msg.Receiver.ProfileImagePath,
			},
			CreatedAt: msg.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// ChatSocket godoc
// @Summary      Join a chat room
// @Description  Upgrades to a websocket on the given room. The caller must be one of the two users encoded in the room name and the pair must be friends.
// @Tags         chat
// @Param        room  path   string  true  "Room name, e.g. 2_5"
// @Param        token query  string  false "JWT when the Authorization header cannot be set"
// @Success      101  "Switching Protocols"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /ws/chat/{room} [get]
func (h *Handler) ChatSocket(c *gin.Context) {
	ws.ServeWS(h.Hub, h.Chat, c)
}
