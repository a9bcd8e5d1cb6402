package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/database"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Config is the loaded configuration (export dir, key mappings, theme)
	Config *config.Config

	// Service layer (business logic)
	BillService billservice.Service
}

// New creates a new App around an already opened repository.
func New(repo database.DataStore, cfg *config.Config, opts ...Option) *App {
	o := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return &App{
		repo:        repo,
		Config:      cfg,
		BillService: billservice.NewService(repo, o.logger),
	}
}

// Open connects to the database described by cfg and builds the App.
// The caller owns the returned App and must Close it.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo, err := database.NewRepository(db, cfg.Database.Driver)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(repo, cfg, opts...), nil
}

// Close releases the database connection
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
