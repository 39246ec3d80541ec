package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/dto"
	"TRAVELMATE_BACK-END/internal/middleware"
	"TRAVELMATE_BACK-END/internal/storage"
)

func testSessionConfig() *config.SessionConfig {
	return &config.SessionConfig{Secret: "test-secret", TokenTTL: time.Hour}
}

func postChat(t *testing.T, h *ChatHandler, body string, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChat_GeneratesItinerary(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	rec := postChat(t, h, `{"message": "I want a 5 day trip to kerala with cultural experiences"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ApiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ItineraryData == nil {
		t.Fatal("expected itinerary_data to be attached")
	}
	if len(resp.ItineraryData.Days) != 5 {
		t.Errorf("expected 5 days, got %d", len(resp.ItineraryData.Days))
	}
	if !strings.Contains(resp.ItineraryData.Destination, "Kerala") {
		t.Errorf("expected Kerala destination, got %q", resp.ItineraryData.Destination)
	}
}

func TestChat_ClarifiesUnrecognizedDestination(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	rec := postChat(t, h, `{"message": "plan something fun"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := raw["itinerary_data"]; ok {
		t.Error("expected itinerary_data to be absent")
	}
	var resp dto.ApiResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ChatResponse == "" {
		t.Error("expected a clarifying question")
	}
}

func TestChat_MalformedBody(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	for _, body := range []string{"not json", `{"message": ""}`, `{"message": "   "}`} {
		rec := postChat(t, h, body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestChat_MethodNotAllowed(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestChat_SessionThreadsConversation(t *testing.T) {
	store := storage.NewMemStore()
	cfg := testSessionConfig()
	h := NewChatHandler(store, nil, cfg)

	token, err := middleware.GenerateToken("sess-1", "conv-1", cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	postChat(t, h, `{"message": "3 days in goa"}`, token)
	postChat(t, h, `{"message": "make it about food"}`, token)

	messages, err := store.GetConversation(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}
	// Two turns, each a user/assistant pair
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Errorf("unexpected roles %q, %q", messages[0].Role, messages[1].Role)
	}
}

func TestChat_InvalidTokenRejected(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	rec := postChat(t, h, `{"message": "3 days in goa"}`, "garbage-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestGetItinerary_RoundTrip(t *testing.T) {
	store := storage.NewMemStore()
	h := NewChatHandler(store, nil, testSessionConfig())

	rec := postChat(t, h, `{"message": "4 days in paris"}`, "")
	var resp dto.ApiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ItineraryData == nil {
		t.Fatal("expected an itinerary")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/itinerary?id="+resp.ItineraryData.ID, nil)
	getRec := httptest.NewRecorder()
	h.GetItinerary(getRec, req)
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getRec.Code)
	}
	if !bytes.Contains(getRec.Body.Bytes(), []byte("Paris")) {
		t.Errorf("expected the stored Paris itinerary, got %s", getRec.Body.String())
	}
}

func TestGetItinerary_Unknown(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/itinerary?id=nope", nil)
	rec := httptest.NewRecorder()
	h.GetItinerary(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetConversation_MissingID(t *testing.T) {
	h := NewChatHandler(storage.NewMemStore(), nil, testSessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/conversation", nil)
	rec := httptest.NewRecorder()
	h.GetConversation(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSession_CreateAndInspect(t *testing.T) {
	cfg := testSessionConfig()
	h := NewSessionHandler(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Token == "" || created.SessionID == "" || created.ConversationID == "" {
		t.Fatalf("incomplete session response %+v", created)
	}

	inspect := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	inspect.Header.Set("Authorization", "Bearer "+created.Token)
	inspectRec := httptest.NewRecorder()
	h.Handle(inspectRec, inspect)
	if inspectRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", inspectRec.Code)
	}

	var shown dto.SessionResponse
	if err := json.Unmarshal(inspectRec.Body.Bytes(), &shown); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if shown.SessionID != created.SessionID || shown.ConversationID != created.ConversationID {
		t.Errorf("session ids changed: %+v vs %+v", shown, created)
	}
}
