package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/repo"
)

func ListEvents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Events.List(r.Context())
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func GetEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := d.Events.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

func CreateEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in repo.EventInput
		if !decodeBody(w, r, &in) {
			return
		}

		e, err := d.Events.Create(r.Context(), in)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		d.Logger.Info("event created",
			logger.String("id", e.ID),
			logger.String("title", e.Title))
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Event created", Data: e})
	}
}

func DeleteEvent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := d.Events.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Deleted", Data: e})
	}
}
