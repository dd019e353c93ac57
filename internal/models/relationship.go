package models

import "time"

// RelationState defines the state of the pairwise relationship record.
// Pending states encode the direction of the outstanding request relative
// to the canonical ordering, never relative to the caller.
type RelationState string

const (
	// StatePendingLowHigh means the low-id user requested friendship with
	// the high-id user.
	StatePendingLowHigh RelationState = "pending_low_high"

	// StatePendingHighLow means the high-id user requested friendship with
	// the low-id user.
	StatePendingHighLow RelationState = "pending_high_low"

	// StateFriends means the request was accepted.
	StateFriends RelationState = "friends"
)

// Relationship is the single record kept per unordered pair of users.
// UserLowID < UserHighID always holds; the composite primary key is what
// resolves two concurrent requests for the same pair in favor of one.
type Relationship struct {
	UserLowID  uint          `gorm:"primaryKey"`
	UserHighID uint          `gorm:"primaryKey"`
	State      RelationState `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	UserLow  User `gorm:"foreignKey:UserLowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserHigh User `gorm:"foreignKey:UserHighID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Other returns the party of the relationship that is not userID.
func (r Relationship) Other(userID uint) User {
	if r.UserLowID == userID {
		return r.UserHigh
	}
	return r.UserLow
}
