package models

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a conversation.
// Messages are immutable once created and ordered by insertion.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user | assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
