package flagstore

import (
	"fmt"
	"sort"
	"sync"

	"gte/internal/domain"
	"gte/internal/storage"
)

// Store holds the persisted run-flag selections. On construction it diffs
// the known flags against the persisted seen set: a default-active flag the
// user has never been shown is force-added to the active set, while flags
// the user explicitly deselected stay deselected.
type Store struct {
	mu      sync.Mutex
	known   []Flag
	active  map[string]bool
	values  map[string]string
	storage storage.Storage
}

// NewStore creates a Store from persisted state. A load failure or a
// missing state file starts from the defaults.
func NewStore(st storage.Storage) *Store {
	s := &Store{
		known:   KnownFlags,
		active:  make(map[string]bool),
		values:  make(map[string]string),
		storage: st,
	}

	var state *domain.FlagState
	if st != nil {
		state, _ = st.LoadFlagState()
	}

	seen := make(map[string]bool)
	if state != nil {
		for _, id := range state.Seen {
			seen[id] = true
		}
		for _, id := range state.Active {
			s.active[id] = true
		}
		for id, v := range state.Values {
			s.values[id] = v
		}
	}

	changed := state == nil
	for _, f := range s.known {
		if !seen[f.ID] {
			if f.DefaultActive {
				s.active[f.ID] = true
			}
			changed = true
		}
	}
	if changed {
		s.persist()
	}

	return s
}

func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	state := &domain.FlagState{Values: make(map[string]string)}
	for id, on := range s.active {
		if on {
			state.Active = append(state.Active, id)
		}
	}
	sort.Strings(state.Active)
	for id, v := range s.values {
		state.Values[id] = v
	}
	for _, f := range s.known {
		state.Seen = append(state.Seen, f.ID)
	}
	_ = s.storage.SaveFlagState(state)
}

// Flags returns the known flags in emission order.
func (s *Store) Flags() []Flag {
	return append([]Flag(nil), s.known...)
}

// IsActive reports whether the flag is in the active set.
func (s *Store) IsActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[id]
}

// Value returns the stored value for the flag, or its default.
func (s *Store) Value(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked(id)
}

func (s *Store) valueLocked(id string) string {
	if v, ok := s.values[id]; ok && v != "" {
		return v
	}
	for _, f := range s.known {
		if f.ID == id {
			return f.DefaultValue
		}
	}
	return ""
}

// Enable adds the flag to the active set.
func (s *Store) Enable(id string) error {
	return s.setActive(id, true)
}

// Disable removes the flag from the active set.
func (s *Store) Disable(id string) error {
	return s.setActive(id, false)
}

func (s *Store) setActive(id string, on bool) error {
	if !s.isKnown(id) {
		return fmt.Errorf("unknown flag: %s", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[id] = on
	s.persist()
	return nil
}

// SetValue stores a value for a flag that takes one.
func (s *Store) SetValue(id, value string) error {
	if !s.isKnown(id) {
		return fmt.Errorf("unknown flag: %s", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[id] = value
	s.persist()
	return nil
}

func (s *Store) isKnown(id string) bool {
	for _, f := range s.known {
		if f.ID == id {
			return true
		}
	}
	return false
}

// ComposeArgs produces the argument list for one invocation: every active
// flag's token in emission order, with stored or default values substituted
// for flags that need one. The filter-pattern flag is suppressed when the
// caller supplies its own filter.
func (s *Store) ComposeArgs(customFilter string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var args []string
	for _, f := range s.known {
		if !s.active[f.ID] {
			continue
		}
		if f.FilterPattern && customFilter != "" {
			continue
		}
		if f.RequiresValue {
			args = append(args, fmt.Sprintf("%s=%s", f.Token, s.valueLocked(f.ID)))
			continue
		}
		args = append(args, f.Token)
	}
	return args
}
