package storage

import (
	"context"
	"errors"

	"TRAVELMATE_BACK-END/internal/models"
)

// ErrNotFound is returned when a conversation or itinerary id is unknown.
var ErrNotFound = errors.New("not found")

// Store persists conversations and itineraries for the request handlers.
// The planning core never touches it.
type Store interface {
	// SaveConversation stores the messages under a freshly minted id.
	SaveConversation(ctx context.Context, messages []models.ChatMessage) (string, error)
	// PutConversation upserts the messages under a known id.
	PutConversation(ctx context.Context, id string, messages []models.ChatMessage) error
	GetConversation(ctx context.Context, id string) ([]models.ChatMessage, error)

	// SaveItinerary stores the itinerary keyed by its own id.
	SaveItinerary(ctx context.Context, itin models.Itinerary) error
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)

	Ping(ctx context.Context) error
	Close()
}
