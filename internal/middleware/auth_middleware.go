package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kri4n/CourseBooking-API/internal/auth"
	"github.com/Kri4n/CourseBooking-API/internal/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// ContextWithUser attaches a verified identity to the request context
func ContextWithUser(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// UserFromContext retrieves the verified identity attached by Verify
func UserFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(userContextKey).(*auth.Claims)
	return claims, ok
}

// Verify checks the Authorization bearer token and attaches the decoded
// identity to the request context
func Verify(a *auth.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.WriteMessage(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := a.ValidateToken(parts[1])
			if err != nil {
				utils.WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), claims)))
		})
	}
}

// VerifyAdmin rejects non-admin identities. It only inspects the token
// payload, never the database, so a token issued before a privilege change
// stays stale until re-issued.
func VerifyAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
			return
		}
		if !claims.IsAdmin {
			utils.WriteMessage(w, http.StatusForbidden, "Action Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
