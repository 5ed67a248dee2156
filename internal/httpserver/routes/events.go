package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/httpserver/handlers"
)

func init() { Register(registerEvents) }

func registerEvents(r chi.Router, d deps.Deps) {
	r.Get("/events", handlers.ListEvents(d))
	r.Get("/events/{id}", handlers.GetEvent(d))
	r.Post("/events", handlers.CreateEvent(d))
	r.Delete("/events/{id}", handlers.DeleteEvent(d))
}
