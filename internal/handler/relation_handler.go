package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// targetID parses the :id route parameter.
func targetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return 0, false
	}
	return uint(id), true
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id}/request [post]
func (h *Handler) SendRequest(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.Relations.SendRequest(c.Request.Context(), currentUserID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelRequest godoc
// @Summary      Cancel friend request
// @Description  Withdraws a pending friend request the caller sent.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id}/cancel [post]
func (h *Handler) CancelRequest(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.Relations.CancelRequest(c.Request.Context(), currentUserID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request from another user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id}/accept [post]
func (h *Handler) AcceptRequest(c *gin.Context) {
	requester, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.Relations.AcceptRequest(c.Request.Context(), currentUserID(c), requester); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeclineRequest godoc
// @Summary      Decline friend request
// @Description  Declines a pending friend request from another user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id}/decline [post]
func (h *Handler) DeclineRequest(c *gin.Context) {
	requester, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.Relations.DeclineRequest(c.Request.Context(), currentUserID(c), requester); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Removes an existing friendship. Either party may call it.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id}/remove [post]
func (h *Handler) RemoveFriend(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.Relations.RemoveFriend(c.Request.Context(), currentUserID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFriends godoc
// @Summary      List a user's friends
// @Description  Returns the friends of a user, sorted by username.
// @Tags         friendship
// @Produce      json
// @Param        username path      string  true  "Username"
// @Success      200  {array}   service.UserSummary
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/friends [get]
func (h *Handler) GetFriends(c *gin.Context) {
	user, err := h.Accounts.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	friends, err := h.Relations.ListFriends(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}
	c.JSON(http.StatusOK, friends)
}

// GetIncomingRequests godoc
// @Summary      List incoming friend requests
// @Description  Returns the users with an outstanding friend request to the caller, most recent first.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.UserSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/requests [get]
func (h *Handler) GetIncomingRequests(c *gin.Context) {
	requests, err := h.Relations.ListIncomingRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}
