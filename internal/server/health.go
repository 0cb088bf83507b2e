package server

import (
	"errors"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
)

// handleHealth probes the key-value store with a read. An absent probe key is
// healthy; any other failure reports the service as degraded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, err := s.kv.Get(r.Context(), "healthz_probe")
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(r.Context(), "health probe failed", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
