package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/zlnvch/noteverse/models"
	"github.com/zlnvch/noteverse/service"
)

type Handler struct {
	Service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{Service: svc}
}

// Cookie lifetime matches the token expiry
const sessionMaxAge = 7 * 24 * 60 * 60

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Message string            `json:"message,omitempty"`
	User    models.PublicUser `json:"user"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			h.sendError(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrEmailTaken):
			h.sendError(w, http.StatusBadRequest, "Email already registered")
		default:
			log.Printf("Registration failed: %v", err)
			h.sendError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	h.setSessionCookie(w, token)
	h.sendResponse(w, http.StatusCreated, userResponse{
		Message: "User registered successfully",
		User:    user.PublicView(),
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			h.sendError(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			h.sendError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Printf("Login failed: %v", err)
			h.sendError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setSessionCookie(w, token)
	h.sendResponse(w, http.StatusOK, userResponse{
		Message: "Login successful",
		User:    user.PublicView(),
	})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.Service.GetCurrentUser(r.Context(), ident)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Get current user failed: %v", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	h.sendResponse(w, http.StatusOK, userResponse{User: user.PublicView()})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	h.sendResponse(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) sendResponse(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
