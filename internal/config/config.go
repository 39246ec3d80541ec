package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Storage configuration
	Storage StorageConfig

	// Session token configuration
	Session SessionConfig

	// Remote AI backend configuration
	AIBackend AIBackendConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects and configures the store backend
type StorageConfig struct {
	Backend  string // memory | postgres
	Database DatabaseConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
}

// SessionConfig holds session-token configuration
type SessionConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// AIBackendConfig holds the remote AI backend configuration. An empty URL
// means the deterministic local planner answers every message.
type AIBackendConfig struct {
	URL     string
	AppName string
	UserID  string
	Timeout time.Duration
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendMemory),
			Database: DatabaseConfig{
				Host:         getEnv("DB_HOST", "localhost"),
				Port:         getEnv("DB_PORT", "5432"),
				User:         getEnv("DB_USER", "postgres"),
				Password:     getEnv("DB_PASSWORD", ""),
				Name:         getEnv("DB_NAME", "postgres"),
				SSLMode:      getEnv("DB_SSLMODE", "disable"),
				MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
				MinConns:     getInt32Env("DB_MIN_CONNS", 0),
				MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
				ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
				QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
			},
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TokenTTL: getDurationEnv("SESSION_TOKEN_TTL", 7*24*time.Hour), // 7 days
		},
		AIBackend: AIBackendConfig{
			URL:     getEnv("AI_BACKEND_URL", ""),
			AppName: getEnv("AI_BACKEND_APP", "agents"),
			UserID:  getEnv("AI_BACKEND_USER", "test-user"),
			Timeout: getDurationEnv("AI_BACKEND_TIMEOUT", 60*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
		// Nothing to check; conversations live for the process lifetime.
	case BackendPostgres:
		if c.Storage.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Session.Secret == "your-secret-key-change-in-production" {
		log.Println("Warning: SESSION_SECRET not configured, using the default development secret.")
	}

	if c.AIBackend.URL == "" {
		log.Println("AI backend not configured; the deterministic local planner will answer all messages.")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
		int(c.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var parts []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
