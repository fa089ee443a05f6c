package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer credential from the Authorization header
// and adds the verified user identity to the request context.
// The header may carry either "Bearer <token>" or the raw token; when a space
// is present only the substring after the first space is the credential.
// No handler runs without a verified identity.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := shared.ExtractBearerToken(r)
		if !ok {
			slog.Warn("no token provided in request",
				"path", r.URL.Path,
				"method", r.Method)
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case err == auth.ErrExpiredToken:
				slog.Warn("token expired", "path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case err == auth.ErrInvalidToken || err == auth.ErrTokenNotYetValid:
				slog.Warn("invalid token", "path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication failed")
			}
			return
		}

		slog.Debug("token verified", "user_id", claims.UserID)

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the verified user identity from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	return userID, ok
}
