package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/logger"
	"github.com/foodgramapp/foodgram-server/internal/service"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// userKey is the context key for the authenticated user.
const userKey ctxKey = "user"

// tokenSchemes are the accepted Authorization header schemes.
var tokenSchemes = []string{"Token", "Bearer"}

// setUser stores the authenticated user in context.
func setUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// currentUser returns the authenticated user, or nil for anonymous requests.
func currentUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// viewerID returns the authenticated user's ID, or "" for anonymous requests.
func viewerID(ctx context.Context) string {
	if user := currentUser(ctx); user != nil {
		return user.ID
	}
	return ""
}

// RequireUser returns the authenticated user or a 401 error.
func RequireUser(ctx context.Context) (*domain.User, error) {
	user := currentUser(ctx)
	if user == nil {
		return nil, domainerrors.Unauthorized("authentication credentials were not provided")
	}
	return user, nil
}

// bearerToken extracts the token from "Token <t>" or "Bearer <t>".
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok {
		return "", false
	}
	for _, s := range tokenSchemes {
		if strings.EqualFold(scheme, s) {
			token = strings.TrimSpace(token)
			return token, token != ""
		}
	}
	return "", false
}

// authMiddleware validates the Authorization header and stores the user in context.
// Requests without a valid token continue anonymously; handlers that need a user call RequireUser.
func authMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, _, err := auth.VerifyAccessToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := setUser(r.Context(), user)
			if l := logger.FromContext(ctx, nil); l != nil {
				ctx = logger.WithContext(ctx, l.With("user_id", user.ID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
