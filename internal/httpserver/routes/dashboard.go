package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/httpserver/handlers"
)

func init() { Register(registerDashboard) }

func registerDashboard(r chi.Router, d deps.Deps) {
	r.Get("/dashboard/metrics", handlers.DashboardMetrics(d))
}
