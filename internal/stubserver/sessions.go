package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListSessions())
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.Session
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	created, err := h.store.CreateSession(req.ContextID, req.Title)
	if err != nil {
		if errors.Is(err, ErrContextNotFound) {
			writeError(w, http.StatusNotFound, "context not found")
			return
		}
		log.Err(err).Msg("unexpected error creating session")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID := chi.URLParam(r, "sessionID")
	if err := h.store.DeleteSession(sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		log.Err(err).Msg("unexpected error deleting session")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	history, err := h.store.SessionMessages(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, history)
}
