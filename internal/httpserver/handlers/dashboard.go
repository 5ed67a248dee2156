package handlers

import (
	"net/http"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
)

// DashboardMetrics serves the aggregated analytics view. Reads all three
// collections; any storage failure fails the whole request.
func DashboardMetrics(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := d.Dashboard.Summarize(r.Context())
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
