package stubserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/profile", h.profile)

		r.Get("/api/contexts", h.listContexts)
		r.Post("/api/contexts", h.createContext)
		r.Delete("/api/contexts/{contextID}", h.deleteContext)
		r.Post("/api/contexts/{contextID}/documents", h.uploadDocument)

		r.Get("/api/sessions", h.listSessions)
		r.Post("/api/sessions", h.createSession)
		r.Delete("/api/sessions/{sessionID}", h.deleteSession)
		r.Get("/api/sessions/{sessionID}/messages", h.sessionMessages)

		r.Post("/api/chat", h.chat)
	})

	return router
}
