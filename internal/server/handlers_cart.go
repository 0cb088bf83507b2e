package server

import (
	"encoding/json"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/gorilla/mux"
)

type cartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals models.CartTotals `json:"totals"`
}

func (s *Server) cartResponse(r *http.Request, owner string) cartResponse {
	return cartResponse{
		Items:  s.cart.Items(r.Context(), owner),
		Totals: s.cart.Totals(r.Context(), owner),
	}
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())
	respondJSON(w, http.StatusOK, s.cartResponse(r, profile.ID))
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.ID == "" {
		respondError(w, common.ErrValidation)
		return
	}

	profile, _ := profileFromContext(r.Context())
	s.cart.Add(r.Context(), profile.ID, item)
	respondJSON(w, http.StatusOK, s.cartResponse(r, profile.ID))
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	profile, _ := profileFromContext(r.Context())
	if err := s.cart.UpdateQuantity(r.Context(), profile.ID, mux.Vars(r)["id"], req.Delta); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.cartResponse(r, profile.ID))
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())
	s.cart.Remove(r.Context(), profile.ID, mux.Vars(r)["id"])
	respondJSON(w, http.StatusOK, s.cartResponse(r, profile.ID))
}
