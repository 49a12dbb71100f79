package http

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
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/entries", func(r chi.Router) {
			r.Post("/", h.createEntry)
			r.Get("/", h.listEntries)
			r.Get("/{id}", h.getEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
			r.Put("/{id}/favorite", h.setFavorite)
		})

		r.Post("/api/analysis/emotions", h.analyzeEmotions)
		r.Delete("/api/analysis/emotions/cache", h.clearEmotionCache)
		r.Post("/api/analysis/themes", h.analyzeThemes)
		r.Delete("/api/analysis/themes/cache", h.clearThemeCache)
		r.Post("/api/analysis/crisis", h.checkCrisis)

		r.Get("/api/prompts/daily", h.dailyPrompt)

		r.Put("/api/user/emergency-contact", h.updateEmergencyContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
