package dto

// SessionResponse is returned when a chat session is created or inspected.
// The token is a bearer credential for threading later messages into the
// same conversation.
type SessionResponse struct {
	SessionID      string `json:"session_id"`
	ConversationID string `json:"conversation_id"`
	Token          string `json:"token,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}
