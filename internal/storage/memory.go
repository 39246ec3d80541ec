package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"TRAVELMATE_BACK-END/internal/models"
)

// MemStore is the reference in-memory store. Writes to the same key are
// last-write-wins, which is acceptable because each session is driven by a
// single user's serialized requests.
type MemStore struct {
	mu            sync.RWMutex
	conversations map[string][]models.ChatMessage
	itineraries   map[string]models.Itinerary
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		conversations: make(map[string][]models.ChatMessage),
		itineraries:   make(map[string]models.Itinerary),
	}
}

func (s *MemStore) SaveConversation(ctx context.Context, messages []models.ChatMessage) (string, error) {
	id := uuid.NewString()
	return id, s.PutConversation(ctx, id, messages)
}

func (s *MemStore) PutConversation(_ context.Context, id string, messages []models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[id] = messages
	return nil
}

func (s *MemStore) GetConversation(_ context.Context, id string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages, ok := s.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return messages, nil
}

func (s *MemStore) SaveItinerary(_ context.Context, itin models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itineraries[itin.ID] = itin
	return nil
}

func (s *MemStore) GetItinerary(_ context.Context, id string) (*models.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	itin, ok := s.itineraries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &itin, nil
}

func (s *MemStore) Ping(_ context.Context) error { return nil }

func (s *MemStore) Close() {}
