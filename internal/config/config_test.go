package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetScanPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				ScanPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with scan path flag",
			config: &Config{
				ProjectPath: "/project",
				ScanPath:    ".",
				Flags: Flags{
					ScanPath: "internal",
				},
			},
			expected: "/project/internal",
		},
		{
			name: "absolute scan path",
			config: &Config{
				ProjectPath: "/project",
				ScanPath:    ".",
				Flags: Flags{
					ScanPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetScanPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_StatePaths(t *testing.T) {
	cfg := &Config{ProjectPath: "/project", StateDir: ".gte"}

	if got := cfg.GetHistoryPath(); got != "/project/.gte/history.json" {
		t.Errorf("unexpected history path: %s", got)
	}
	if got := cfg.GetFlagStatePath(); got != "/project/.gte/flags.json" {
		t.Errorf("unexpected flag state path: %s", got)
	}

	t.Run("absolute state dir wins", func(t *testing.T) {
		cfg := &Config{ProjectPath: "/project", StateDir: "/var/state"}
		if got := cfg.GetStateDir(); got != "/var/state" {
			t.Errorf("expected /var/state, got %s", got)
		}
	})
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("GTE_HISTORY_CAPACITY", "5")
	t.Setenv("GTE_WORKERS", "8")
	t.Setenv("GTE_STATE_DIR", filepath.Join(t.TempDir(), "state"))

	cfg := New()
	if cfg.HistoryCapacity != 5 {
		t.Errorf("expected history capacity 5, got %d", cfg.HistoryCapacity)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected workers 8, got %d", cfg.Workers)
	}
	if cfg.StateDir == DefaultStateDir {
		t.Error("expected state dir override to apply")
	}

	t.Run("invalid numbers keep defaults", func(t *testing.T) {
		t.Setenv("GTE_WORKERS", "not-a-number")
		cfg := New()
		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected default workers, got %d", cfg.Workers)
		}
	})
}
