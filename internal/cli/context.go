// Package cli holds the shared plumbing of the billform subcommands: the
// application handle, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/billform/internal/app"
	"github.com/thenoetrevino/billform/internal/cli/styles"
	"github.com/thenoetrevino/billform/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when App was injected by the caller, who then closes it
	owned bool
}

// WithApp returns a context carrying an already opened App.
// Commands run under this context use it instead of opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// NewCLI loads configuration and opens the database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns the App injected with WithApp, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned || c.App == nil {
		return nil
	}
	return c.App.Close()
}
