package server

import (
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/gorilla/mux"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	respondJSON(w, http.StatusOK, s.catalog.ByCategory(category))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// handleProductImage resolves a stored image key into a presigned download
// URL. Without object storage configured the image path is returned as-is.
func (s *Server) handleProductImage(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	if !s.images.Enabled() {
		respondJSON(w, http.StatusOK, map[string]string{"url": p.Image})
		return
	}

	url, err := s.images.PresignedGetURL(r.Context(), p.Image)
	if err != nil {
		s.logger.Error(r.Context(), "could not presign image download", "error", err)
		respondError(w, common.ErrInternal)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.Categories())
}
