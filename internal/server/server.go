// Package server wires the storefront stores into an HTTP JSON API and runs
// the application lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dhanamorganics/storefront/internal/auth"
	"github.com/dhanamorganics/storefront/internal/cart"
	"github.com/dhanamorganics/storefront/internal/catalog"
	"github.com/dhanamorganics/storefront/internal/config"
	"github.com/dhanamorganics/storefront/internal/content"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
)

// Server holds the handler dependencies: the four stores, the image service
// and the key-value store used by the health probe.
type Server struct {
	addr    string
	logger  logging.Logger
	kv      kvstore.Store
	auth    *auth.Service
	cart    *cart.Service
	catalog *catalog.Service
	content *content.Service
	images  *catalog.ImageService
}

func NewServer(cfg *config.Config, logger logging.Logger, kv kvstore.Store,
	authService *auth.Service, cartService *cart.Service,
	catalogService *catalog.Service, contentService *content.Service,
	imageService *catalog.ImageService) *Server {

	return &Server{
		addr:    cfg.EndpointAddr,
		logger:  logger,
		kv:      kv,
		auth:    authService,
		cart:    cartService,
		catalog: catalogService,
		content: contentService,
		images:  imageService,
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
