package server

import (
	"encoding/json"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/models"
)

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	// Form rules: all fields required, password at least 6 characters,
	// confirmation must match.
	switch {
	case req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "":
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "all fields are required"})
		return
	case len(req.Password) < 6:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "password must be at least 6 characters"})
		return
	case req.Password != req.ConfirmPassword:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
		return
	}

	profile, token, err := s.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse{User: profile, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	profile, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{User: profile, Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())
	s.auth.Logout(r.Context(), profile.ID)
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, _ := profileFromContext(r.Context())
	respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, common.ErrValidation)
		return
	}

	profile, _ := profileFromContext(r.Context())
	updated, err := s.auth.UpdateProfile(r.Context(), profile.ID, upd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
