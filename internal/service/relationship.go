package service

import (
	"context"
	"errors"
	"sort"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/repository"
)

// RelationSummary describes a relationship from one user's point of view.
type RelationSummary string

const (
	RelationNone     RelationSummary = "none"
	RelationFriends  RelationSummary = "friends"
	RelationSent     RelationSummary = "sent"
	RelationReceived RelationSummary = "received"
)

// UserSummary is the public shape of a user in friend and request lists.
type UserSummary struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	ProfileImagePath string `json:"profile_image_path"`
}

// RelationshipService owns the friend-relationship state machine. All pair
// canonicalization happens here, once per call; the stores only ever see
// keys with low < high.
type RelationshipService struct {
	Users         repository.UserStore
	Relationships repository.RelationshipStore
}

// canonicalPair orders two user ids ascending.
func canonicalPair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// pendingStateFrom returns the pending state encoding a request sent by
// senderID within the canonical pair.
func pendingStateFrom(senderID, low uint) models.RelationState {
	if senderID == low {
		return models.StatePendingLowHigh
	}
	return models.StatePendingHighLow
}

// SendRequest creates a pending relationship from caller to target. Any
// failed precondition (self target, unknown target, existing record) is
// reported as the same invalid-request error.
func (s *RelationshipService) SendRequest(ctx context.Context, callerID, targetID uint) error {
	if callerID == targetID {
		return apperr.ErrInvalidRequest
	}
	if _, err := s.Users.ByID(ctx, targetID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrInvalidRequest
		}
		return err
	}

	low, high := canonicalPair(callerID, targetID)
	rel := models.Relationship{
		UserLowID:  low,
		UserHighID: high,
		State:      pendingStateFrom(callerID, low),
	}
	if err := s.Relationships.Create(ctx, &rel); err != nil {
		// A duplicate key here is the losing side of a race between two
		// send calls for the same pair; it gets the uniform error too.
		return apperr.ErrInvalidRequest
	}
	return nil
}

// CancelRequest withdraws a pending request the caller sent.
func (s *RelationshipService) CancelRequest(ctx context.Context, callerID, targetID uint) error {
	if callerID == targetID {
		return apperr.ErrInvalidRequest
	}
	low, high := canonicalPair(callerID, targetID)
	deleted, err := s.Relationships.DeleteInState(ctx, low, high, pendingStateFrom(callerID, low))
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrInvalidRequest
	}
	return nil
}

// AcceptRequest transitions a pending request addressed to the caller into
// the Friends state.
func (s *RelationshipService) AcceptRequest(ctx context.Context, callerID, requesterID uint) error {
	if callerID == requesterID {
		return apperr.ErrInvalidRequest
	}
	low, high := canonicalPair(callerID, requesterID)
	updated, err := s.Relationships.UpdateState(ctx, low, high, pendingStateFrom(requesterID, low), models.StateFriends)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.ErrInvalidRequest
	}
	return nil
}

// DeclineRequest deletes a pending request addressed to the caller.
func (s *RelationshipService) DeclineRequest(ctx context.Context, callerID, requesterID uint) error {
	if callerID == requesterID {
		return apperr.ErrInvalidRequest
	}
	low, high := canonicalPair(callerID, requesterID)
	deleted, err := s.Relationships.DeleteInState(ctx, low, high, pendingStateFrom(requesterID, low))
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrInvalidRequest
	}
	return nil
}

// RemoveFriend deletes an existing friendship. Either party may call it;
// no record of the former friendship is kept.
func (s *RelationshipService) RemoveFriend(ctx context.Context, callerID, targetID uint) error {
	if callerID == targetID {
		return apperr.ErrInvalidRequest
	}
	low, high := canonicalPair(callerID, targetID)
	deleted, err := s.Relationships.DeleteInState(ctx, low, high, models.StateFriends)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrInvalidRequest
	}
	return nil
}

// ListFriends returns userID's friends sorted by username.
func (s *RelationshipService) ListFriends(ctx context.Context, userID uint) ([]UserSummary, error) {
	rels, err := s.Relationships.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}
	friends := make([]UserSummary, 0, len(rels))
	for _, rel := range rels {
		other := rel.Other(userID)
		friends = append(friends, UserSummary{
			ID:               other.ID,
			Username:         other.Username,
			ProfileImagePath: other.ProfileImagePath,
		})
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].Username < friends[j].Username })
	return friends, nil
}

// ListIncomingRequests returns the users with an outstanding request to
// userID, most recently modified first.
func (s *RelationshipService) ListIncomingRequests(ctx context.Context, userID uint) ([]UserSummary, error) {
	rels, err := s.Relationships.IncomingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	requesters := make([]UserSummary, 0, len(rels))
	for _, rel := range rels {
		other := rel.Other(userID)
		requesters = append(requesters, UserSummary{
			ID:               other.ID,
			Username:         other.Username,
			ProfileImagePath: other.ProfileImagePath,
		})
	}
	return requesters, nil
}

// RelationTo reports the viewer's relationship with target for profile
// rendering.
func (s *RelationshipService) RelationTo(ctx context.Context, viewerID, targetID uint) (RelationSummary, error) {
	if viewerID == targetID {
		return RelationNone, nil
	}
	low, high := canonicalPair(viewerID, targetID)
	rel, err := s.Relationships.Get(ctx, low, high)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return RelationNone, nil
		}
		return RelationNone, err
	}
	switch rel.State {
	case models.StateFriends:
		return RelationFriends, nil
	default:
		if rel.State == pendingStateFrom(viewerID, low) {
			return RelationSent, nil
		}
		return RelationReceived, nil
	}
}

// AreFriends reports whether two users currently have a Friends record.
func (s *RelationshipService) AreFriends(ctx context.Context, a, b uint) (bool, error) {
	if a == b {
		return false, nil
	}
	low, high := canonicalPair(a, b)
	return s.Relationships.AreFriends(ctx, low, high)
}
