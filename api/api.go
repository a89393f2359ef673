package api

import (
	"net/http"

	"github.com/zlnvch/noteverse/api/rest"
	"github.com/zlnvch/noteverse/cache"
	"github.com/zlnvch/noteverse/service"
	"github.com/zlnvch/noteverse/store"
)

type NoteverseAPI struct {
	restHandler *rest.Handler
}

func NewNoteverseAPI(
	noteverseStore store.NoteverseStore,
	noteverseCache cache.NoteverseCache,
	jwtSecret []byte,
) *NoteverseAPI {
	svc := service.NewService(noteverseStore, noteverseCache, jwtSecret)

	return &NoteverseAPI{
		restHandler: rest.NewHandler(svc),
	}
}

// RegisterRoutes wires all endpoints onto the mux and returns it wrapped in
// the CORS layer the browser client needs for cross-site cookie auth.
func (noteverseAPI *NoteverseAPI) RegisterRoutes(mux *http.ServeMux, allowedOrigin string) http.Handler {
	// Health check endpoint (no auth required)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	h := noteverseAPI.restHandler

	mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	mux.HandleFunc("GET /api/auth/me", h.RequireAuth(h.HandleMe))
	mux.HandleFunc("POST /api/auth/logout", h.HandleLogout)

	mux.HandleFunc("POST /api/notes", h.RequireAuth(h.HandleCreateNote))
	mux.HandleFunc("GET /api/notes", h.RequireAuth(h.HandleListNotes))
	mux.HandleFunc("GET /api/notes/{id}", h.RequireAuth(h.HandleGetNote))
	mux.HandleFunc("PUT /api/notes/{id}", h.RequireAuth(h.HandleUpdateNote))
	mux.HandleFunc("DELETE /api/notes/{id}", h.RequireAuth(h.HandleDeleteNote))

	return withCORS(mux, allowedOrigin)
}

// withCORS allows the single configured browser origin with credentials, which
// the SameSite=None session cookie requires.
func withCORS(next http.Handler, allowedOrigin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && origin == allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
