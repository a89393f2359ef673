package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/zlnvch/noteverse/service"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.Service.CreateNote(r.Context(), ident.UserId, req.Title, req.Content)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			h.sendError(w, http.StatusBadRequest, ve.Error())
			return
		}
		log.Printf("Create note failed: %v", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	h.sendResponse(w, http.StatusCreated, note)
}

func (h *Handler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	notes, err := h.Service.ListNotes(r.Context(), ident.UserId)
	if err != nil {
		log.Printf("List notes failed: %v", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	h.sendResponse(w, http.StatusOK, notes)
}

func (h *Handler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	note, err := h.Service.GetNote(r.Context(), ident.UserId, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("Get note failed: %v", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch note")
		return
	}

	h.sendResponse(w, http.StatusOK, note)
}

func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.Service.UpdateNote(r.Context(), ident.UserId, r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			h.sendError(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrNotFound):
			h.sendError(w, http.StatusNotFound, "Note not found")
		default:
			log.Printf("Update note failed: %v", err)
			h.sendError(w, http.StatusInternalServerError, "Failed to update note")
		}
		return
	}

	h.sendResponse(w, http.StatusOK, note)
}

func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.Service.DeleteNote(r.Context(), ident.UserId, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("Delete note failed: %v", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	h.sendResponse(w, http.StatusOK, messageResponse{Message: "Note deleted"})
}
