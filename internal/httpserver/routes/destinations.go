package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/httpserver/handlers"
)

func init() { Register(registerDestinations) }

func registerDestinations(r chi.Router, d deps.Deps) {
	r.Get("/search", handlers.SearchDestinations(d))
	r.Get("/destinasi/id/{id}", handlers.GetDestinationByID(d))
	r.Get("/destinasi/{slug}", handlers.GetDestinationBySlug(d))
	r.Post("/destinasi", handlers.CreateDestination(d))
	r.Put("/destinasi/{id}", handlers.UpdateDestination(d))
	r.Delete("/destinasi/{id}", handlers.DeleteDestination(d))
	r.Post("/import/destinations", handlers.ImportDestinations(d))
}
