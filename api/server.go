/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the timesheet frontend

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Crew routes
		r.Route("/crew", func(r chi.Router) {
			r.Get("/", h.ListCrew)
			r.Post("/", h.CreateCrew)
			r.Get("/{id}", h.GetCrew)

			r.Get("/{id}/ratecard", h.GetRateCard)
			r.Put("/{id}/ratecard", h.UpdateRateCard)

			r.Get("/{id}/entries", h.ListEntries)
			r.Get("/{id}/entries/{date}", h.GetEntry)
			r.Put("/{id}/entries/{date}", h.PutEntry)
			r.Delete("/{id}/entries/{date}", h.DeleteEntry)
			r.Get("/{id}/entries/{date}/calculation", h.GetCalculation)

			r.Get("/{id}/summary/week", h.GetWeekSummary)
			r.Get("/{id}/summary/month", h.GetMonthSummary)
			r.Get("/{id}/export/week.pdf", h.ExportWeekPDF)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetDatabase)
		})
	})

	return r
}
