package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/dto"
	"TRAVELMATE_BACK-END/internal/middleware"
	"TRAVELMATE_BACK-END/internal/utils"
)

// SessionHandler issues and inspects anonymous chat sessions
type SessionHandler struct {
	cfg *config.SessionConfig
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(cfg *config.SessionConfig) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Handle dispatches /api/session by method
func (h *SessionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		middleware.RequireSession(h.show, h.cfg)(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// create starts a new session
// @Summary Create a chat session
// @Description Create an anonymous session and return a bearer token that threads later messages into one conversation
// @Tags session
// @Produce json
// @Success 201 {object} dto.SessionResponse "New session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/session [post]
func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()
	conversationID := uuid.NewString()

	token, err := middleware.GenerateToken(sessionID, conversationID, h.cfg)
	if err != nil {
		log.Printf("session: generating token failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong", "Could not create a session")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SessionResponse{
		SessionID:      sessionID,
		ConversationID: conversationID,
		Token:          token,
		CreatedAt:      time.Now().Format(time.RFC3339),
	})
}

// show echoes the validated session
// @Summary Inspect the current session
// @Description Validate the bearer token and return its session and conversation ids
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse "Current session"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /api/session [get]
func (h *SessionHandler) show(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Valid session token required")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{
		SessionID:      claims.SessionID,
		ConversationID: claims.ConversationID,
	})
}
