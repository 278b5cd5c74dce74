package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/config"
	apperrors "github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
	"github.com/jiu45/JobPortal/pkg/utils"
)

type contextKey struct{}

var userIDKey contextKey

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user attached to ctx by the middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// TokenFromRequest pulls the bearer token from the Authorization header,
// falling back to the token query parameter for websocket clients that
// cannot set headers.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// Middleware authenticates every request and injects the caller's user id
// into the request context.
func Middleware(cfg *config.Config, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				utils.RespondError(w, apperrors.ErrMissingToken)
				return
			}

			userID, err := utils.ParseUserID(token, cfg)
			if err != nil {
				logger.Warn("rejected request with invalid token", "path", r.URL.Path)
				utils.RespondError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
