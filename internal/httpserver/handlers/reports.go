package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/repo"
)

func ListReports(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Reports.List(r.Context())
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func CreateReport(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in repo.ReportInput
		if !decodeBody(w, r, &in) {
			return
		}

		rep, err := d.Reports.Create(r.Context(), in)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		d.Logger.Info("report created",
			logger.String("id", rep.ID),
			logger.String("title", rep.Title))
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Report created", Data: rep})
	}
}

func DeleteReport(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := d.Reports.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Deleted", Data: rep})
	}
}
