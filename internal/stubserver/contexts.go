package stubserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

// maxUploadBytes bounds in-memory multipart parsing.
const maxUploadBytes = 32 << 20

func (h *Handler) listContexts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListContexts())
}

func (h *Handler) createContext(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.Context
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "context name is required")
		return
	}

	created := h.store.CreateContext(req.Name, req.Description)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteContext(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contextID := chi.URLParam(r, "contextID")
	if err := h.store.DeleteContext(contextID); err != nil {
		if errors.Is(err, ErrContextNotFound) {
			writeError(w, http.StatusNotFound, "context not found")
			return
		}
		log.Err(err).Msg("unexpected error deleting context")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contextID := chi.URLParam(r, "contextID")
	if _, ok := h.store.GetContext(contextID); !ok {
		writeError(w, http.StatusNotFound, "context not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart body")
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		log.Err(err).Msg("error reading uploaded file")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	doc, err := h.store.AddDocument(contextID, header.Filename, size)
	if err != nil {
		log.Err(err).Msg("error storing document")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusCreated, models.UploadResult{
		Document: doc,
		Chunks:   chunkCount(size),
	})
}

// chunkCount mimics the ingestion report of a real backend: one retrieval
// chunk per 512 bytes, at least one for any non-empty file.
func chunkCount(size int64) int {
	if size == 0 {
		return 0
	}
	return int((size + 511) / 512)
}
