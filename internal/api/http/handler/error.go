package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evhammar/staffdir/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleError maps store and service failures onto the documented HTTP
// error bodies. Raw internal errors never reach the client.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Email already exists"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
