package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"TRAVELMATE_BACK-END/internal/config"
	"TRAVELMATE_BACK-END/internal/utils"
)

// ErrNoToken is returned when a request carries no bearer token.
var ErrNoToken = errors.New("no session token")

type claimsKey struct{}

// SessionClaims represents the claims in a session token. Sessions are
// anonymous; the claims only tie messages to a conversation.
type SessionClaims struct {
	SessionID      string `json:"session_id"`
	ConversationID string `json:"conversation_id"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed token for the given session
func GenerateToken(sessionID, conversationID string, cfg *config.SessionConfig) (string, error) {
	claims := SessionClaims{
		SessionID:      sessionID,
		ConversationID: conversationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, cfg *config.SessionConfig) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// SessionFromRequest extracts and validates the bearer token, if any.
// ErrNoToken means the request was simply anonymous.
func SessionFromRequest(r *http.Request, cfg *config.SessionConfig) (*SessionClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrNoToken
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, jwt.ErrTokenMalformed
	}

	return ValidateToken(tokenParts[1], cfg)
}

// RequireSession validates the bearer token and stores the claims in the
// request context
func RequireSession(next http.HandlerFunc, cfg *config.SessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := SessionFromRequest(r, cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Valid session token required")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the session claims stored by RequireSession.
func ClaimsFromContext(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*SessionClaims)
	return claims, ok
}
