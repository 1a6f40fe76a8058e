package storage

import (
	"testing"
	"time"

	"gte/internal/config"
	"gte/internal/domain"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_History(t *testing.T) {
	st := newTestStorage(t)

	t.Run("missing file loads empty", func(t *testing.T) {
		entries, err := st.LoadHistory()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries != nil {
			t.Errorf("expected nil entries, got %+v", entries)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		dur := 0.25
		saved := []domain.RunHistoryEntry{
			{
				ID:        "run-1",
				Label:     "2026-01-02 10:00:00 · all tests",
				Timestamp: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
				Results: []domain.RunResult{
					{TestName: "TestFoo", PackagePath: "/work/demo", File: "/work/demo/foo_test.go", Status: domain.StatusPassed, DurationSeconds: &dur},
					{TestName: "TestBar", PackagePath: "/work/demo", Status: domain.StatusFailed},
				},
			},
		}
		if err := st.SaveHistory(saved); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := st.LoadHistory()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(loaded) != 1 || len(loaded[0].Results) != 2 {
			t.Fatalf("unexpected shape: %+v", loaded)
		}
		if loaded[0].Results[0].DurationSeconds == nil || *loaded[0].Results[0].DurationSeconds != 0.25 {
			t.Errorf("duration lost in round trip: %+v", loaded[0].Results[0])
		}
		if loaded[0].Results[1].DurationSeconds != nil {
			t.Errorf("expected absent duration to stay nil, got %+v", loaded[0].Results[1])
		}
	})
}

func TestJSONStorage_FlagState(t *testing.T) {
	st := newTestStorage(t)

	t.Run("missing file loads nil", func(t *testing.T) {
		state, err := st.LoadFlagState()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state != nil {
			t.Errorf("expected nil state, got %+v", state)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		saved := &domain.FlagState{
			Active: []string{"verbose", "race"},
			Values: map[string]string{"timeout": "30s"},
			Seen:   []string{"verbose", "race", "timeout"},
		}
		if err := st.SaveFlagState(saved); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		loaded, err := st.LoadFlagState()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded == nil || loaded.Values["timeout"] != "30s" || len(loaded.Active) != 2 {
			t.Errorf("unexpected state: %+v", loaded)
		}
	})
}
