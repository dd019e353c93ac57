package handler

import (
	"net/http"
	"path/filepath"
	"time"

	"socialnet/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PostResponse defines the structure for a post in feeds and profiles.
type PostResponse struct {
	ID                    uint      `json:"id"`
	OwnerUsername         string    `json:"owner_username"`
	OwnerProfileImagePath string    `json:"owner_profile_image_path"`
	Text                  string    `json:"text,omitempty"`
	ImagePath             string    `json:"image_path,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a post with optional text and an optional image. At least one of the two is required.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        text  formData string false "Post text"
// @Param        image formData file   false "Image file"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	viewerID := currentUserID(c)
	text := c.PostForm("text")

	var imagePath string
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		imagePath, err = h.Images.SavePostImage(viewerID, file, filepath.Ext(fileHeader.Filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
	}

	post, err := h.Posts.Create(c.Request.Context(), viewerID, text, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, buildPostResponse(post))
}

// GetFeed godoc
// @Summary      Get the caller's feed
// @Description  Returns the caller's own posts and those of all current friends, newest first.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PostResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	posts, err := h.Posts.Feed(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	results := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		results = append(results, buildPostResponse(post))
	}
	c.JSON(http.StatusOK, results)
}

// GetUserPosts godoc
// @Summary      List a user's posts
// @Description  Returns a single user's posts, newest first.
// @Tags         posts
// @Produce      json
// @Param        username path      string  true  "Username"
// @Success      200  {array}   PostResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/posts [get]
func (h *Handler) GetUserPosts(c *gin.Context) {
	posts, err := h.Posts.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		results = append(results, buildPostResponse(post))
	}
	c.JSON(http.StatusOK, results)
}

func buildPostResponse(post models.Post) PostResponse {
	return PostResponse{
		ID:                    post.ID,
		OwnerUsername:         post.Owner.Username,
		OwnerProfileImagePath: post.Owner.ProfileImagePath,
		Text:                  post.Text,
		ImagePath:             post.ImagePath,
		CreatedAt:             post.CreatedAt,
	}
}
