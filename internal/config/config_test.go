package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig tests the default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.ReportsDir != DefaultReportsDir {
		t.Errorf("got %q, expected %q", cfg.ReportsDir, DefaultReportsDir)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("got %q, expected %q", cfg.ListenAddr, DefaultListenAddr)
	}
	if cfg.HistoryConcurrency != DefaultHistoryConcurrency {
		t.Errorf("got %d, expected %d", cfg.HistoryConcurrency, DefaultHistoryConcurrency)
	}
	if cfg.Verbose || cfg.JSONOutput || cfg.MarkdownOutput {
		t.Error("expected boolean options to default to false")
	}
}

// TestConfigValidate tests validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			modify:  func(_ *Config) {},
			wantErr: nil,
		},
		{
			name:    "empty reports dir",
			modify:  func(c *Config) { c.ReportsDir = "" },
			wantErr: ErrNoReportsDir,
		},
		{
			name: "conflicting output formats",
			modify: func(c *Config) {
				c.JSONOutput = true
				c.MarkdownOutput = true
			},
			wantErr: ErrConflictingOutputFormats,
		},
		{
			name:    "zero concurrency",
			modify:  func(c *Config) { c.HistoryConcurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name:    "negative concurrency",
			modify:  func(c *Config) { c.HistoryConcurrency = -1 },
			wantErr: ErrInvalidConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

// TestApplyFile tests file-over-default precedence.
func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("overrides set values only", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(&File{ReportsDir: "/srv/reports"})

		if cfg.ReportsDir != "/srv/reports" {
			t.Errorf("got %q, expected file value", cfg.ReportsDir)
		}
		if cfg.ListenAddr != DefaultListenAddr {
			t.Errorf("got %q, expected default to survive", cfg.ListenAddr)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(nil)

		if cfg.ReportsDir != DefaultReportsDir {
			t.Errorf("got %q, expected defaults unchanged", cfg.ReportsDir)
		}
	})
}

// TestLoadConfigFile tests YAML loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads valid yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "reports_dir: /srv/reports\nlisten_addr: \"127.0.0.1:9000\"\nhistory_concurrency: 8\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ReportsDir != "/srv/reports" || f.ListenAddr != "127.0.0.1:9000" || f.HistoryConcurrency != 8 {
			t.Errorf("got %+v, expected parsed values", f)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("got %v, expected ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml returns an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("reports_dir: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the explicit-path branch of config discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path when it exists", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("reports_dir: x\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})

	t.Run("returns empty string for missing explicit path", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("got %q, expected empty string", got)
		}
	})
}
