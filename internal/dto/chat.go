package dto

import "TRAVELMATE_BACK-END/internal/models"

// ChatRequest represents the payload for sending a chat message
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ApiResponse represents the assistant's reply to a chat message.
// ItineraryData is attached only when the message yielded a recognized
// destination.
type ApiResponse struct {
	ChatResponse  string            `json:"chat_response"`
	ItineraryData *models.Itinerary `json:"itinerary_data,omitempty"`
}

// ConversationResponse envelope for fetching a stored conversation
type ConversationResponse struct {
	ID       string               `json:"id"`
	Messages []models.ChatMessage `json:"messages"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
