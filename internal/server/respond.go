package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps store errors onto HTTP statuses. Credential failures stay
// generic so the API does not leak which part of the lookup failed.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	case errors.Is(err, common.ErrEmailTaken):
		respondJSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
	case errors.Is(err, common.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
