package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires the storefront routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public storefront reads.
	api.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/image", s.handleProductImage).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	api.HandleFunc("/content", s.handleContent).Methods(http.MethodGet)
	api.HandleFunc("/content/{section}/{key}", s.handleContentField).Methods(http.MethodGet)

	// Auth.
	api.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.requireAuth(s.handleLogout)).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.requireAuth(s.handleMe)).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", s.requireAuth(s.handleUpdateProfile)).Methods(http.MethodPatch)

	// Cart, owned by the authenticated user.
	api.HandleFunc("/cart", s.requireAuth(s.handleGetCart)).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", s.requireAuth(s.handleAddToCart)).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", s.requireAuth(s.handleUpdateQuantity)).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{id}", s.requireAuth(s.handleRemoveItem)).Methods(http.MethodDelete)

	// Admin panel.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/stats", s.requireAuth(s.handleStats)).Methods(http.MethodGet)
	admin.HandleFunc("/products", s.requireAuth(s.handleAddProduct)).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", s.requireAuth(s.handleUpdateProduct)).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", s.requireAuth(s.handleDeleteProduct)).Methods(http.MethodDelete)
	admin.HandleFunc("/products/{id}/image-upload", s.requireAuth(s.handleImageUpload)).Methods(http.MethodPost)
	admin.HandleFunc("/content/{id}", s.requireAuth(s.handleUpdateSection)).Methods(http.MethodPut)

	return loggingMiddleware(s.logger, r)
}
