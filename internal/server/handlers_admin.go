package server

import (
	"encoding/json"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/gorilla/mux"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"totalProducts":   s.catalog.TotalProducts(),
		"totalCategories": s.catalog.TotalCategories(),
	})
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	created, err := s.catalog.Add(p)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var upd models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	updated, err := s.catalog.Update(mux.Vars(r)["id"], upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// handleImageUpload hands the admin client a storage key and a presigned PUT
// URL for a new product image. The product record is updated separately once
// the upload succeeds.
func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	if !s.images.Enabled() {
		respondJSON(w, http.StatusNotImplemented, map[string]string{"error": "image uploads are not configured"})
		return
	}

	if _, err := s.catalog.Get(mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	key, url, err := s.images.PresignedPutURL(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "could not presign image upload", "error", err)
		respondError(w, common.ErrInternal)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

type updateSectionRequest struct {
	Fields []models.ContentField `json:"fields"`
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	if err := s.content.UpdateSection(r.Context(), mux.Vars(r)["id"], req.Fields); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
