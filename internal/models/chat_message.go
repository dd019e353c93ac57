package models

import "gorm.io/gorm"

// MaxChatMessageLen bounds the content of a single chat message.
const MaxChatMessageLen = 500

// ChatMessage is one delivered chat message between two friends. Records
// are immutable once created and ordered by creation time.
type ChatMessage struct {
	gorm.Model
	SenderID   uint   `gorm:"not null;index"`
	ReceiverID uint   `gorm:"not null;index"`
	Content    string `gorm:"size:500;not null"`

	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}
