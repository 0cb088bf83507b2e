package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.content.Sections())
}

// handleContentField mirrors the view helper that renders a single field: an
// unknown section or key yields an empty value, never an error.
func (s *Server) handleContentField(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	value := s.content.GetField(vars["section"], vars["key"])
	respondJSON(w, http.StatusOK, map[string]string{"value": value})
}
