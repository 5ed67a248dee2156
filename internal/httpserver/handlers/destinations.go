package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/repo"
)

// SearchDestinations filters destinations by label or tag substring; an
// empty query returns the full collection.
func SearchDestinations(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		items, err := d.Destinations.Search(r.Context(), query)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func GetDestinationBySlug(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dest, err := d.Destinations.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, dest)
	}
}

func GetDestinationByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dest, err := d.Destinations.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, dest)
	}
}

func CreateDestination(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in repo.DestinationInput
		if !decodeBody(w, r, &in) {
			return
		}

		dest, err := d.Destinations.Create(r.Context(), in)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		d.Logger.Info("destination created",
			logger.String("id", dest.ID),
			logger.String("label", dest.Label))
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Success", Data: dest})
	}
}

func UpdateDestination(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in repo.DestinationUpdate
		if !decodeBody(w, r, &in) {
			return
		}

		dest, err := d.Destinations.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Updated successfully", Data: dest})
	}
}

func DeleteDestination(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dest, err := d.Destinations.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		d.Logger.Info("destination deleted", logger.String("id", dest.ID))
		writeJSON(w, http.StatusOK, messageResponse{Message: "Deleted successfully", Data: dest})
	}
}

// ImportDestinations accepts a JSON array of loosely shaped records and
// imports the ones carrying a label or title.
func ImportDestinations(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var records []repo.ImportRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			writeError(w, http.StatusBadRequest, "Expected a JSON array of destinations")
			return
		}

		added, err := d.Destinations.Import(r.Context(), records)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}
		d.Logger.Info("destinations imported", logger.Int("count", added))
		writeJSON(w, http.StatusCreated, messageResponse{
			Message: fmt.Sprintf("Successfully imported %d destinations", added),
		})
	}
}
