// Package middlewarectx contains the HTTP middleware for bearer-token
// authentication, the admin role gate and rate limiting.
//
// AuthMiddleware resolves the Authorization header into a live user
// record: the token only proves identity, the role is re-fetched from
// storage on every request so a role change takes effect on the next
// call without re-login. A token referencing a deleted user is
// rejected; previously issued tokens are otherwise valid until expiry
// (no revocation).
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentesana/landing-api/internal/http/response"
	"github.com/mentesana/landing-api/internal/lib/jwt"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/models"
	"github.com/mentesana/landing-api/internal/storage/repository"
)

// Key is the context key type for request-scoped values.
type Key string

// UserKey holds the authenticated *models.User (without hash).
const UserKey Key = "user"

// UserProvider fetches the live user record for an authenticated id.
type UserProvider interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// UserFromContext returns the authenticated user attached by
// AuthMiddleware, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

// AuthMiddleware returns middleware that verifies the bearer token and
// attaches the live user record to the request context. Responds 401
// on a missing or malformed header, an invalid or expired token, or a
// token whose user no longer exists.
func AuthMiddleware(maker jwt.Maker, users UserProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			// The role in effect is whatever storage says right now,
			// not what it was at issuance.
			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					log.Error("token references a deleted user")
					w.WriteHeader(http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired token"))
					return
				}
				log.Error("failed to resolve user", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal server error"))
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
