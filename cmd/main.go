// @title TravelMate Backend API
// @version 1.0
// @description TravelMate Backend API for conversational travel planning
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"

	_ "TRAVELMATE_BACK-END/docs" // This is required for swagger
	"TRAVELMATE_BACK-END/internal/aiclient"
	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/handlers"
	"TRAVELMATE_BACK-END/internal/routes"
	"TRAVELMATE_BACK-END/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// --- Storage ---
	var store storage.Store
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pgStore, err := storage.NewPostgresStore(context.Background(), &cfg.Storage.Database)
		if err != nil {
			log.Fatalf("postgres store: %v", err)
		}
		store = pgStore
		log.Println("Using Postgres storage")
	default:
		store = storage.NewMemStore()
		log.Println("Using in-memory storage")
	}
	defer store.Close()

	// --- Remote AI backend (optional) ---
	var ai *aiclient.Client
	if cfg.AIBackend.URL != "" {
		ai = aiclient.New(&cfg.AIBackend)
		log.Printf("Relaying chat messages to AI backend at %s", cfg.AIBackend.URL)
	}

	// --- HTTP Handlers ---
	chatHandler := handlers.NewChatHandler(store, ai, &cfg.Session)
	sessionHandler := handlers.NewSessionHandler(&cfg.Session)
	healthHandler := handlers.NewHealthHandler(store)

	// Setup all routes
	routes.SetupRoutes(chatHandler, sessionHandler, healthHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
