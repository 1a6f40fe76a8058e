package history

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gte/internal/domain"
	"gte/internal/storage"
)

// Ledger is the bounded, append-only log of past runs. Entries are immutable
// once recorded; only eviction at capacity or an explicit clear removes
// them. The ledger is persisted through storage so history survives
// sessions.
type Ledger struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.RunHistoryEntry
	storage  storage.Storage
	now      func() time.Time
	seq      uint64
}

// NewLedger creates a Ledger with the given capacity, loading any persisted
// entries. A load failure starts an empty ledger rather than failing.
func NewLedger(capacity int, st storage.Storage) *Ledger {
	if capacity <= 0 {
		capacity = 1
	}
	l := &Ledger{
		capacity: capacity,
		storage:  st,
		now:      time.Now,
	}
	if st != nil {
		if entries, err := st.LoadHistory(); err == nil {
			l.entries = entries
			l.evict()
		}
	}
	return l
}

// Record appends one completed run. A run with no results is not recorded.
// When the ledger would exceed its capacity, the oldest entries are
// discarded from the front.
func (l *Ledger) Record(label string, results []domain.RunResult) {
	if len(results) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now()
	l.seq++
	// The sequence number keeps IDs unique when two records land in the
	// same nanosecond.
	l.entries = append(l.entries, domain.RunHistoryEntry{
		ID:        fmt.Sprintf("run-%d-%d", ts.UnixNano(), l.seq),
		Label:     fmt.Sprintf("%s · %s", ts.Format("2006-01-02 15:04:05"), label),
		Timestamp: ts,
		Results:   append([]domain.RunResult(nil), results...),
	})
	l.evict()
	l.persist()
}

func (l *Ledger) evict() {
	if len(l.entries) > l.capacity {
		l.entries = append([]domain.RunHistoryEntry(nil), l.entries[len(l.entries)-l.capacity:]...)
	}
}

func (l *Ledger) persist() {
	if l.storage == nil {
		return
	}
	// Persistence is best-effort; the in-memory ledger stays authoritative.
	_ = l.storage.SaveHistory(l.entries)
}

// Entries returns the ledger in display order, most recent first.
func (l *Ledger) Entries() []domain.RunHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.RunHistoryEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded runs.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear removes all entries.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.persist()
}

// SortResults orders one entry's results for display: failing first,
// unknown second, passing last. The sort is stable within each group.
func SortResults(results []domain.RunResult) []domain.RunResult {
	out := append([]domain.RunResult(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		return statusRank(out[i].Status) < statusRank(out[j].Status)
	})
	return out
}

func statusRank(s domain.Status) int {
	switch s {
	case domain.StatusFailed:
		return 0
	case domain.StatusPassed:
		return 2
	default:
		return 1
	}
}
