package storage

import (
	"gte/internal/config"
	"gte/internal/domain"
)

// Storage persists state that survives sessions: the run-history ledger and
// the user's flag selections. A missing file is not an error; loads return
// zero values so first runs start clean.
type Storage interface {
	LoadHistory() ([]domain.RunHistoryEntry, error)
	SaveHistory(entries []domain.RunHistoryEntry) error
	LoadFlagState() (*domain.FlagState, error)
	SaveFlagState(state *domain.FlagState) error
}

// JSONStorage stores state in JSON files under the configured state dir.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's state paths.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
