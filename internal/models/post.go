package models

import "gorm.io/gorm"

// Post is a status update owned by a user. Text and image are both
// optional at the storage layer; the service rejects posts with neither.
type Post struct {
	gorm.Model
	OwnerID   uint   `gorm:"not null;index"`
	Text      string `gorm:"size:500"`
	ImagePath string `gorm:"size:512"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
