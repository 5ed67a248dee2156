package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pariwisata-jepara/backend/internal/domain"
	"github.com/pariwisata-jepara/backend/internal/httpserver/deps"
	"github.com/pariwisata-jepara/backend/internal/logger"
)

// messageResponse is the envelope every mutating endpoint answers with.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, d deps.Deps, err error) {
	switch {
	case domain.IsCode(err, domain.ErrCodeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case domain.IsCode(err, domain.ErrCodeInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		d.Logger.Error("storage failure", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody parses a JSON request body, reporting malformed input as a
// 400 to the client. Returns false when the response has been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}
