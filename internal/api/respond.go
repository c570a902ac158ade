package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/cookquest/internal/questgraph"
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, err error) error {
	return writeJSON(w, statusCode, map[string]any{"error": err.Error()})
}

// writeDomainError maps the engine's error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) error {
	var (
		nfe *questgraph.NotFoundError
		ve  *questgraph.ValidationError
		ce  *questgraph.CycleError
	)
	switch {
	case errors.As(err, &nfe):
		return writeError(w, http.StatusNotFound, err)
	case errors.As(err, &ve):
		return writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &ce):
		return writeError(w, http.StatusUnprocessableEntity, err)
	default:
		return writeError(w, http.StatusInternalServerError, err)
	}
}
