package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ScanPath    string

	// State persisted between sessions (run history, flag selections)
	StateDir        string
	HistoryCapacity int

	// Execution settings
	Workers int

	// Directories to skip when scanning for test files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers    int
	ScanPath   string
	NameFilter string
	RunFilter  string
	SubTests   bool
	Plain      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:     DefaultProjectPath,
		ScanPath:        DefaultScanPath,
		StateDir:        DefaultStateDir,
		HistoryCapacity: DefaultHistoryCapacity,
		Workers:         DefaultWorkers,
		Flags:           Flags{Workers: DefaultWorkers},
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.applyEnv()
	return cfg
}

// applyEnv loads a .env file from the project directory if present and
// applies GTE_* overrides from the environment.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("GTE_STATE_DIR"); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv("GTE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}
	if v := os.Getenv("GTE_HISTORY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.HistoryCapacity = n
		}
	}
}

// GetScanPath returns the discovery root, using flag if provided
func (c *Config) GetScanPath() string {
	if c.Flags.ScanPath != "" {
		if filepath.IsAbs(c.Flags.ScanPath) {
			return c.Flags.ScanPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.ScanPath)
	}

	return filepath.Join(c.ProjectPath, c.ScanPath)
}

// GetStateDir returns the absolute state directory so every command
// reads/writes the same files regardless of cwd.
func (c *Config) GetStateDir() string {
	p := c.StateDir
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHistoryPath returns the path of the persisted run-history file.
func (c *Config) GetHistoryPath() string {
	return filepath.Join(c.GetStateDir(), HistoryFile)
}

// GetFlagStatePath returns the path of the persisted flag-selection file.
func (c *Config) GetFlagStatePath() string {
	return filepath.Join(c.GetStateDir(), FlagStateFile)
}
