package repository

import (
	"context"

	"socialnet/backend/internal/models"
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id uint) (models.User, error)
	ByUsername(ctx context.Context, username string) (models.User, error)
	// ByLogin matches username or email.
	ByLogin(ctx context.Context, login string) (models.User, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID uint) (usernameTaken, emailTaken bool, err error)
	Update(ctx context.Context, u *models.User) error
	// Search matches username or email substrings case-insensitively,
	// excluding excludeID, ordered by username. Returns the page and the
	// total match count.
	Search(ctx context.Context, query string, excludeID uint, page, limit int) ([]models.User, int64, error)
}

// RelationshipStore persists the canonical pairwise relationship records.
// Every method takes the pair in canonical order (low < high); callers are
// expected to canonicalize once at the service boundary.
type RelationshipStore interface {
	Create(ctx context.Context, r *models.Relationship) error
	Get(ctx context.Context, low, high uint) (models.Relationship, error)
	// UpdateState transitions the record only if it currently holds from.
	// Returns false when no matching record exists.
	UpdateState(ctx context.Context, low, high uint, from, to models.RelationState) (bool, error)
	// DeleteInState removes the record only if it currently holds state.
	// Returns false when no matching record exists.
	DeleteInState(ctx context.Context, low, high uint, state models.RelationState) (bool, error)
	// Friends returns all Friends-state relationships involving userID,
	// with both parties preloaded.
	Friends(ctx context.Context, userID uint) ([]models.Relationship, error)
	// IncomingRequests returns pending relationships whose direction points
	// at userID, most recently modified first, with both parties preloaded.
	IncomingRequests(ctx context.Context, userID uint) ([]models.Relationship, error)
	AreFriends(ctx context.Context, low, high uint) (bool, error)
}

// PostStore persists posts.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	// ByOwners returns posts owned by any of ownerIDs, newest first, with
	// owners preloaded.
	ByOwners(ctx context.Context, ownerIDs []uint) ([]models.Post, error)
}

// ChatMessageStore persists chat messages.
type ChatMessageStore interface {
	Create(ctx context.Context, m *models.ChatMessage) error
	// Between returns the full message history between two users in either
	// direction, oldest first, with sender and receiver preloaded.
	Between(ctx context.Context, a, b uint) ([]models.ChatMessage, error)
}
