// Package launcher starts the interactive bill table
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/app"
	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/logging"
	"github.com/thenoetrevino/billform/internal/tui"
	"github.com/thenoetrevino/billform/internal/tui/theme"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	theme.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	model := tui.New(ctx, application.BillService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		// Ctrl+C from outside the program is a normal way to leave
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
