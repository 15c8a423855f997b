package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}
	if user.Login == "" || user.Password == "" {
		writeError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	account, err := h.store.EnsureUser(user.Login, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			log.Err(err).Str("login", user.Login).Msg("login rejected")
			writeError(w, http.StatusUnauthorized, "invalid login/password")
			return
		default:
			log.Err(err).Msg("unexpected error during login")
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	token, err := issueToken(h.cfg.TokenIssuer, account.UserID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, token)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// tokens are stateless; logout only acknowledges
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := h.store.UserByID(userIDFromContext(r.Context()))
	if !ok {
		log.Warn().Msg("token subject is not a known user")
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	// never echo the credential back
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}
