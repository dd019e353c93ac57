package models

import "gorm.io/gorm"

// DefaultProfileImagePath is assigned to every new account until the user
// uploads an avatar of their own.
const DefaultProfileImagePath = "images/default_images/default_profile.png"

// User represents a registered account.
type User struct {
	gorm.Model
	Username         string `gorm:"size:255;unique;not null"`
	Email            string `gorm:"size:255;unique;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	ProfileImagePath string `gorm:"size:512;not null"`
}
