package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"TRAVELMATE_BACK-END/internal/models"
)

func TestMemStore_ConversationLifecycle(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	messages := []models.ChatMessage{
		{ID: "m1", Role: models.RoleUser, Content: "hi", Timestamp: time.Now()},
		{ID: "m2", Role: models.RoleAssistant, Content: "hello", Timestamp: time.Now()},
	}

	id, err := store.SaveConversation(ctx, messages)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty conversation id")
	}

	got, err := store.GetConversation(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m1" {
		t.Errorf("unexpected messages %+v", got)
	}

	// Upsert under the same id
	messages = append(messages, models.ChatMessage{ID: "m3", Role: models.RoleUser, Content: "more"})
	if err := store.PutConversation(ctx, id, messages); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err = store.GetConversation(ctx, id)
	if err != nil {
		t.Fatalf("get after put: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 messages, got %d", len(got))
	}
}

func TestMemStore_UnknownIDs(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	if _, err := store.GetConversation(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetItinerary(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStore_ItineraryLifecycle(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	itin := models.Itinerary{ID: "itin-1", TripName: "Amazing Journey", Destination: "atlantis"}
	if err := store.SaveItinerary(ctx, itin); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.GetItinerary(ctx, "itin-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TripName != "Amazing Journey" {
		t.Errorf("unexpected itinerary %+v", got)
	}
}

func TestMemStore_Ping(t *testing.T) {
	if err := NewMemStore().Ping(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
