package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/httpserver/handlers"
)

func init() { Register(registerReports) }

func registerReports(r chi.Router, d deps.Deps) {
	r.Get("/laporan", handlers.ListReports(d))
	r.Post("/laporan", handlers.CreateReport(d))
	r.Delete("/laporan/{id}", handlers.DeleteReport(d))
}
