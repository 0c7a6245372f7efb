package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a router with the HTML pages and the JSON endpoints
func NewRouter(h *Handler, wh *WebHandler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(Recoverer(logger))
	r.Use(Logger(logger))
	r.Use(CORS)

	// Web routes (HTML pages)
	r.Get("/", wh.Home)
	r.Get("/get-data", wh.GetData)
	r.Get("/add-word", wh.AddWordForm)

	r.Get("/export-words", h.ExportWords)

	// JSON routes
	r.Group(func(r chi.Router) {
		r.Use(JSONContentType)

		r.Get("/health", h.HealthCheck)
		r.Get("/get-word-list", h.GetWordList)
		r.Post("/add-word", h.AddWord)
		r.Post("/delete-word", h.DeleteWord)
		r.Post("/generate-word-details", h.GenerateWordDetails)
	})

	return r
}
