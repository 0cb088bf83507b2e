package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dhanamorganics/storefront/internal/auth"
	"github.com/dhanamorganics/storefront/internal/cart"
	"github.com/dhanamorganics/storefront/internal/catalog"
	"github.com/dhanamorganics/storefront/internal/config"
	"github.com/dhanamorganics/storefront/internal/content"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
)

// App assembles the key-value backend, the stores and the HTTP server.
type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func newKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StorageFile:
		return kvstore.NewFileStore(cfg.FileStorageDir)
	case config.StoragePostgres:
		return kvstore.NewPostgresStore(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	kv, err := newKVStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	authService := auth.NewService(ctx, kv, logger, cfg)
	cartService := cart.NewService(kv, logger, cfg)
	catalogService := catalog.NewService(catalog.Seed())
	contentService := content.NewService(ctx, kv, logger)
	imageService := catalog.NewImageService(cfg)

	srv := NewServer(cfg, logger, kv, authService, cartService, catalogService, contentService, imageService)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
