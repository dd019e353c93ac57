package handler

import (
	"errors"
	"net/http"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/service"
	"socialnet/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler carries the services behind the HTTP surface.
type Handler struct {
	Accounts  *service.AccountService
	Relations *service.RelationshipService
	Posts     *service.PostService
	Chat      *service.ChatService
	Hub       *hub.Hub
	Images    *storage.ImageStore
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}

// respondError maps service errors onto HTTP responses. Invalid-request
// failures share one message regardless of which precondition failed.
func respondError(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, apperr.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request."})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperr.ErrUsernameTaken), errors.Is(err, apperr.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already exists"})
	case errors.Is(err, apperr.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
