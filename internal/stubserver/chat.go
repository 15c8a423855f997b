package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	session, ok := h.store.GetSession(req.SessionID)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	contextID := req.ContextID
	if contextID == "" {
		contextID = session.ContextID
	}
	var kctx models.Context
	if contextID != "" {
		if kctx, ok = h.store.GetContext(contextID); !ok {
			writeError(w, http.StatusNotFound, "context not found")
			return
		}
	}

	if _, err := h.store.AppendMessage(session.SessionID, models.RoleUser, req.Question); err != nil {
		log.Err(err).Msg("error recording question")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	answer := cannedAnswer(req.Question, kctx)

	if !req.Stream {
		if _, err := h.store.AppendMessage(session.SessionID, models.RoleAssistant, answer); err != nil {
			log.Err(err).Msg("error recording answer")
		}
		writeJSON(w, http.StatusOK, models.ChatResponse{Answer: answer, SessionID: session.SessionID})
		return
	}

	h.streamAnswer(w, r, session.SessionID, answer)
}

// streamAnswer writes the answer as an event stream of word-sized fragments
// followed by the end-of-stream sentinel, flushing after every event so
// clients observe the fragments as they are produced.
func (h *Handler) streamAnswer(w http.ResponseWriter, r *http.Request, sessionID, answer string) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support streaming")
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	for _, fragment := range strings.SplitAfter(answer, " ") {
		if fragment == "" {
			continue
		}
		event, err := json.Marshal(models.StreamEvent{Content: &fragment})
		if err != nil {
			log.Err(err).Msg("error encoding stream event")
			break
		}
		if _, err := fmt.Fprintf(w, "%s%s\n\n", models.StreamDataPrefix, event); err != nil {
			// client went away; nothing left to deliver
			log.Debug().Err(err).Msg("stream write failed")
			return
		}
		flusher.Flush()
	}

	fmt.Fprintf(w, "%s%s\n\n", models.StreamDataPrefix, models.StreamDonePayload)
	flusher.Flush()

	if _, err := h.store.AppendMessage(sessionID, models.RoleAssistant, answer); err != nil {
		log.Err(err).Msg("error recording answer")
	}
}

// cannedAnswer fabricates a deterministic reply. There is no retrieval or
// generation behind it; the text only reflects what a grounded answer would
// mention so client flows can be exercised end to end.
func cannedAnswer(question string, kctx models.Context) string {
	question = strings.TrimSpace(question)
	if kctx.ContextID == "" {
		return fmt.Sprintf("You asked: %q. No knowledge context is attached to this conversation, so this is a canned reply.", question)
	}
	return fmt.Sprintf("You asked: %q. Based on the %d document(s) in context %q, here is a canned reply.",
		question, kctx.DocumentCount, kctx.Name)
}
