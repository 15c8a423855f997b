package stubserver

import (
	"net/http"

	"github.com/docchat/docchat/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: h.cfg.Version,
	})
}
