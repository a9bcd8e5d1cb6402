package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, tempDir, content string) {
	t.Helper()
	configDir := filepath.Join(tempDir, AppName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestThemeFileLoading(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `theme:
  accent: "#FF0000"
  error_fg: "#00FF00"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.ErrorFg != "#00FF00" {
		t.Errorf("Expected error_fg to be #00FF00, got %s", cfg.ColorScheme.ErrorFg)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Title != DefaultColorScheme().Title {
		t.Errorf("Expected title to default to %s, got %s", DefaultColorScheme().Title, cfg.ColorScheme.Title)
	}
}

func TestThemePresets(t *testing.T) {
	tests := []struct {
		preset string
		want   ColorScheme
	}{
		{"monochrome", MonochromeColorScheme()},
		{"wave", WaveColorScheme()},
		{"dragon", DragonColorScheme()},
		{"lotus", LotusColorScheme()},
		{"no-such-theme", DefaultColorScheme()},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			c := ColorScheme{Preset: tt.preset}
			c.ApplyDefaults()

			if c.Accent != tt.want.Accent || c.ErrorBg != tt.want.ErrorBg {
				t.Errorf("preset %q gave accent %s / error_bg %s, want %s / %s",
					tt.preset, c.Accent, c.ErrorBg, tt.want.Accent, tt.want.ErrorBg)
			}
		})
	}
}

func TestThemePresetWithOverride(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `theme:
  preset: lotus
  title: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Title != "#123456" {
		t.Errorf("override lost: title = %s", cfg.ColorScheme.Title)
	}
	if cfg.ColorScheme.Accent != LotusColorScheme().Accent {
		t.Errorf("accent = %s, want the lotus accent %s", cfg.ColorScheme.Accent, LotusColorScheme().Accent)
	}
}
