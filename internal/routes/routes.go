package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELMATE_BACK-END/internal/handlers"
)

// SetupRoutes configures all application routes
func SetupRoutes(chatHandler *handlers.ChatHandler, sessionHandler *handlers.SessionHandler, healthHandler *handlers.HealthHandler) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Chat routes
	http.HandleFunc("/api/chat", chatHandler.Chat)
	http.HandleFunc("/api/conversation", chatHandler.GetConversation)
	http.HandleFunc("/api/itinerary", chatHandler.GetItinerary)

	// Session routes
	http.HandleFunc("/api/session", sessionHandler.Handle)

	// API documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("TravelMate backend is running."))
}
