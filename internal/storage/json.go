package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gte/internal/domain"
)

// LoadHistory reads the persisted run-history ledger. A missing file yields
// an empty ledger, not an error.
func (s *JSONStorage) LoadHistory() ([]domain.RunHistoryEntry, error) {
	data, err := os.ReadFile(s.cfg.GetHistoryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}
	var entries []domain.RunHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return entries, nil
}

// SaveHistory writes the full ledger to the configured history path.
func (s *JSONStorage) SaveHistory(entries []domain.RunHistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.write(s.cfg.GetHistoryPath(), data)
}

// LoadFlagState reads the persisted flag selections. A missing file yields
// nil so the flag store can start from its defaults.
func (s *JSONStorage) LoadFlagState() (*domain.FlagState, error) {
	data, err := os.ReadFile(s.cfg.GetFlagStatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read flag state: %w", err)
	}
	var state domain.FlagState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse flag state: %w", err)
	}
	return &state, nil
}

// SaveFlagState writes the flag selections to the configured path.
func (s *JSONStorage) SaveFlagState(state *domain.FlagState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal flag state: %w", err)
	}
	return s.write(s.cfg.GetFlagStatePath(), data)
}

func (s *JSONStorage) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
