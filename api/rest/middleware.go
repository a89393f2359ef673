package rest

import (
	"context"
	"net/http"

	"github.com/zlnvch/noteverse/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

const sessionCookieName = "token"

// RequireAuth gates a handler behind the session cookie. Without a cookie the
// request is rejected before the codec is even consulted; with one, the token
// is verified and the resulting identity bound into the request context. The
// wrapped handler never runs without a verified identity.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			h.sendError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		ident, err := h.Service.VerifyJWT(cookie.Value)
		if err != nil {
			h.sendError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next(w, r.WithContext(ctx))
	}
}

func identityFromContext(ctx context.Context) (models.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(models.Identity)
	return ident, ok
}
