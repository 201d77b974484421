package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/palaceapp/palace-api/auth"
	"github.com/palaceapp/palace-api/config"
	"github.com/palaceapp/palace-api/models"
)

type contextKey string

const userKey contextKey = "user"

// RequireUser validates the bearer token and attaches the user row to context
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		publicID, err := auth.VerifyToken(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		var user models.User
		result := config.Database.Where("public_id = ?", publicID).First(&user)
		if result.Error != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		// Add user to context for downstream handlers
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
	}
}

// WithUser returns a context carrying the given user, as RequireUser attaches it.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user attached by RequireUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// extractToken extracts the token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
