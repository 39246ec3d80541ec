package handlers

import (
	"context"
	"net/http"
	"time"

	"TRAVELMATE_BACK-END/internal/dto"
	"TRAVELMATE_BACK-END/internal/storage"
	"TRAVELMATE_BACK-END/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck handles basic health check (no storage)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes storage connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"storage": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"storage": "ok"},
	})
}
