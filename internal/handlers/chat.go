package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELMATE_BACK-END/internal/aiclient"
	"TRAVELMATE_BACK-END/internal/aiparse"
	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/dto"
	"TRAVELMATE_BACK-END/internal/middleware"
	"TRAVELMATE_BACK-END/internal/models"
	"TRAVELMATE_BACK-END/internal/planner"
	"TRAVELMATE_BACK-END/internal/storage"
	"TRAVELMATE_BACK-END/internal/utils"
)

// ChatHandler handles chat and lookup requests. With a configured AI
// backend it relays messages there and parses whatever comes back;
// otherwise the deterministic local planner answers.
type ChatHandler struct {
	store      storage.Store
	ai         *aiclient.Client // nil means local planner only
	sessionCfg *config.SessionConfig
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(store storage.Store, ai *aiclient.Client, sessionCfg *config.SessionConfig) *ChatHandler {
	return &ChatHandler{store: store, ai: ai, sessionCfg: sessionCfg}
}

// Chat handles an inbound chat message
// @Summary Send a chat message
// @Description Parse travel intent from the message and reply with an optional generated itinerary
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ApiResponse "Assistant reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Request body must be JSON with a message field")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Message must not be empty")
		return
	}

	// An invalid token is rejected; no token at all is just an anonymous turn.
	claims, err := middleware.SessionFromRequest(r, h.sessionCfg)
	if err != nil && !errors.Is(err, middleware.ErrNoToken) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid session token")
		return
	}

	sessionID := "fallback-session-" + uuid.NewString()
	if claims != nil {
		sessionID = claims.SessionID
	}

	response, err := h.respond(r.Context(), sessionID, message)
	if err != nil {
		log.Printf("chat: responding to message failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong",
			"Sorry, I couldn't process that message. Please try again.")
		return
	}

	h.persistTurn(r.Context(), claims, message, response)

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// respond produces the assistant reply for one message. Panics from the
// pipeline are converted to errors so the caller can return a 500.
func (h *ChatHandler) respond(ctx context.Context, sessionID, message string) (response dto.ApiResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while responding: %v", r)
		}
	}()

	if h.ai != nil {
		payload, aiErr := h.ai.Run(ctx, sessionID, message)
		if aiErr == nil {
			parsed := aiparse.Parse(payload)
			return dto.ApiResponse{ChatResponse: parsed.Text, ItineraryData: parsed.Itinerary}, nil
		}
		// The local planner is the designed stand-in when the backend is down.
		log.Printf("chat: ai backend unavailable, using local planner: %v", aiErr)
	}

	return planner.Plan(message), nil
}

// persistTurn saves the message pair and any generated itinerary. Storage
// failures are logged only; the user still gets a conversational reply.
func (h *ChatHandler) persistTurn(ctx context.Context, claims *middleware.SessionClaims, message string, response dto.ApiResponse) {
	now := time.Now()
	turn := []models.ChatMessage{
		{ID: uuid.NewString(), Role: models.RoleUser, Content: message, Timestamp: now},
		{ID: uuid.NewString(), Role: models.RoleAssistant, Content: response.ChatResponse, Timestamp: now},
	}

	if claims != nil {
		existing, err := h.store.GetConversation(ctx, claims.ConversationID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Printf("chat: loading conversation %s failed: %v", claims.ConversationID, err)
		}
		if err := h.store.PutConversation(ctx, claims.ConversationID, append(existing, turn...)); err != nil {
			log.Printf("chat: saving conversation %s failed: %v", claims.ConversationID, err)
		}
	} else {
		if _, err := h.store.SaveConversation(ctx, turn); err != nil {
			log.Printf("chat: saving conversation failed: %v", err)
		}
	}

	if response.ItineraryData != nil {
		if err := h.store.SaveItinerary(ctx, *response.ItineraryData); err != nil {
			log.Printf("chat: saving itinerary %s failed: %v", response.ItineraryData.ID, err)
		}
	}
}

// GetConversation returns a stored conversation
// @Summary Fetch a conversation
// @Description Return the messages of a conversation by id, or the session's own conversation when a bearer token is supplied
// @Tags chat
// @Produce json
// @Param id query string false "Conversation id"
// @Success 200 {object} dto.ConversationResponse "Conversation messages"
// @Failure 400 {object} dto.ErrorResponse "Missing conversation id"
// @Failure 404 {object} dto.ErrorResponse "Unknown conversation"
// @Router /api/conversation [get]
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		if claims, err := middleware.SessionFromRequest(r, h.sessionCfg); err == nil {
			id = claims.ConversationID
		}
	}
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing id", "Provide a conversation id or a session token")
		return
	}

	messages, err := h.store.GetConversation(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No conversation with that id")
		return
	}
	if err != nil {
		log.Printf("chat: loading conversation %s failed: %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong", "Could not load the conversation")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ConversationResponse{ID: id, Messages: messages})
}

// GetItinerary returns a stored itinerary
// @Summary Fetch an itinerary
// @Description Return a previously generated itinerary by id
// @Tags chat
// @Produce json
// @Param id query string true "Itinerary id"
// @Success 200 {object} models.Itinerary "Stored itinerary"
// @Failure 400 {object} dto.ErrorResponse "Missing itinerary id"
// @Failure 404 {object} dto.ErrorResponse "Unknown itinerary"
// @Router /api/itinerary [get]
func (h *ChatHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing id", "Provide an itinerary id")
		return
	}

	itin, err := h.store.GetItinerary(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No itinerary with that id")
		return
	}
	if err != nil {
		log.Printf("chat: loading itinerary %s failed: %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong", "Could not load the itinerary")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, itin)
}
