package service

import (
	"context"
	"strings"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/repository"
)

// PostService creates posts and assembles feeds.
type PostService struct {
	Posts         repository.PostStore
	Users         repository.UserStore
	Relationships repository.RelationshipStore
}

// Create validates and stores a new post. The text-or-image invariant is
// enforced here, at the service boundary; the store accepts any record.
func (s *PostService) Create(ctx context.Context, ownerID uint, text, imagePath string) (models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" && imagePath == "" {
		return models.Post{}, apperr.NewValidationError(map[string]string{
			"post": "text or image must not be empty",
		})
	}
	if len(text) > 500 {
		return models.Post{}, apperr.NewValidationError(map[string]string{
			"text": "must be at most 500 characters",
		})
	}

	post := models.Post{
		OwnerID:   ownerID,
		Text:      text,
		ImagePath: imagePath,
	}
	if err := s.Posts.Create(ctx, &post); err != nil {
		return models.Post{}, err
	}
	owner, err := s.Users.ByID(ctx, ownerID)
	if err != nil {
		return models.Post{}, err
	}
	post.Owner = owner
	return post, nil
}

// Feed returns the posts of userID and all current friends, newest first.
// The feed is not paginated.
func (s *PostService) Feed(ctx context.Context, userID uint) ([]models.Post, error) {
	rels, err := s.Relationships.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}
	ownerIDs := make([]uint, 0, len(rels)+1)
	ownerIDs = append(ownerIDs, userID)
	for _, rel := range rels {
		ownerIDs = append(ownerIDs, rel.Other(userID).ID)
	}
	return s.Posts.ByOwners(ctx, ownerIDs)
}

// ListByUsername returns a single user's posts, newest first.
func (s *PostService) ListByUsername(ctx context.Context, username string) ([]models.Post, error) {
	user, err := s.Users.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.Posts.ByOwners(ctx, []uint{user.ID})
}
