package models

import "time"

type Chat struct {
	Base
	UserID   string        `gorm:"index;not null" json:"userId"`
	Title    string        `json:"title"`
	Messages []ChatMessage `gorm:"constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

type ChatMessage struct {
	Base
	ChatID    string    `gorm:"type:uuid;index;not null" json:"chatId"`
	UserID    string    `json:"userId"`
	Sender    string    `json:"sender"` // user id or "Assistant"
	Message   string    `gorm:"type:text" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// Conversation keeps the raw message history of a stateless multi-turn chat.
type Conversation struct {
	Base
	UserID   string `gorm:"index" json:"userId"`
	Messages string `gorm:"type:text" json:"-"` // JSON array of {role, content}
}
