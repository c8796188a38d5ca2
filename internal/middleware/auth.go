package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const UserKey contextKey = "user"

// AnonymousUser owns every request when auth is disabled.
const AnonymousUser = "anonymous"

// APIKeyAuth validates API key from Authorization header. validKeys maps a
// user ID to its key; the matching user is stored in the request context.
func APIKeyAuth(validKeys map[string]string) func(http.Handler) http.Handler {
	keys := make(map[string]string, len(validKeys))
	for user, key := range validKeys {
		if err := ValidateUserID(user); err != nil || strings.TrimSpace(key) == "" {
			logrus.WithField("user", user).Warn("ignoring invalid API key entry")
			continue
		}
		keys[user] = key
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract API key from Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}

			// Support both "Bearer <key>" and "<key>" formats
			apiKey := strings.TrimPrefix(auth, "Bearer ")
			apiKey = strings.TrimSpace(apiKey)

			if apiKey == "" {
				http.Error(w, "invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			// Validate API key (constant-time comparison to prevent timing attacks)
			var user string
			for u, key := range keys {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					user = u
					break
				}
			}

			if user == "" {
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey, user)))
		})
	}
}

// Anonymous puts AnonymousUser in the context. Used when no keys are configured.
func Anonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey, AnonymousUser)))
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(UserKey).(string); ok {
		return user
	}
	return ""
}
