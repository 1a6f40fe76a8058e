package hierarchy

import (
	"strings"
	"sync"

	"gte/internal/domain"
)

type statusKey struct {
	pkgPath string
	name    string // test name, or "Parent/raw" full name for sub-tests
}

type statusEntry struct {
	status   domain.Status
	duration *float64
}

// Store owns the discovered tree behind a single mutation gate. Readers get
// deep-copy snapshots; every write goes through one of the mutation methods
// so callers never share mutable state with the store.
//
// Status and duration are also kept in side maps keyed by package path and
// name. A rediscovery replaces every node wholesale, so ReplaceTree
// re-attaches last-known statuses from the side maps instead of losing them
// with the old objects.
type Store struct {
	mu      sync.Mutex
	modules []domain.Module

	testStatus map[statusKey]statusEntry
	subStatus  map[statusKey]statusEntry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		testStatus: make(map[statusKey]statusEntry),
		subStatus:  make(map[statusKey]statusEntry),
	}
}

// Modules returns a deep-copy snapshot of the current tree.
func (s *Store) Modules() []domain.Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Module, len(s.modules))
	for i, m := range s.modules {
		out[i] = m.Clone()
	}
	return out
}

// ReplaceTree installs a freshly built tree, discarding the previous one,
// and re-attaches last-known statuses. When two discoveries race, whichever
// finishes last wins; the store does not order them.
func (s *Store) ReplaceTree(modules []domain.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = modules
	s.reattach()
}

func (s *Store) reattach() {
	s.eachTest("", func(t *domain.Test) bool {
		if e, ok := s.testStatus[statusKey{t.PackagePath, t.Name}]; ok {
			t.Status = e.status
			t.DurationSeconds = e.duration
		}
		for i := range t.SubTests {
			sub := &t.SubTests[i]
			if e, ok := s.subStatus[statusKey{sub.PackagePath, sub.FullName}]; ok {
				sub.Status = e.status
				sub.DurationSeconds = e.duration
			}
		}
		return false
	})
}

// SetTestStatus mutates the first test with the given name inside the given
// package, in module -> package -> file traversal order. Duplicate names in
// one package are not distinguished; the first match wins. A missing target
// is a silent no-op. The duration is only applied for non-running statuses,
// so a transient running update never clears the last completed duration.
func (s *Store) SetTestStatus(name, pkgPath string, status domain.Status, duration *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eachTest(pkgPath, func(t *domain.Test) bool {
		if t.Name != name {
			return false
		}
		t.Status = status
		if status != domain.StatusRunning && duration != nil {
			t.DurationSeconds = duration
		}
		s.testStatus[statusKey{t.PackagePath, t.Name}] = statusEntry{t.Status, t.DurationSeconds}
		return true
	})
}

// SetSubTestStatus is SetTestStatus narrowed to a parent test's sub-tests,
// matched by full name. Same duration rule, same silent no-op on a miss.
func (s *Store) SetSubTestStatus(parentName, fullName, pkgPath string, status domain.Status, duration *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eachTest(pkgPath, func(t *domain.Test) bool {
		if t.Name != parentName {
			return false
		}
		for i := range t.SubTests {
			sub := &t.SubTests[i]
			if sub.FullName != fullName {
				continue
			}
			sub.Status = status
			if status != domain.StatusRunning && duration != nil {
				sub.DurationSeconds = duration
			}
			s.subStatus[statusKey{sub.PackagePath, sub.FullName}] = statusEntry{sub.Status, sub.DurationSeconds}
			return true
		}
		return true
	})
}

// ReplaceSubTests reconciles run output into the tree: for every parent test
// named in discovered (within pkgPath when given, everywhere when empty),
// the sub-test list is replaced in full by entries built from the run's raw
// names. The display name converts underscores back to spaces, which is
// lossy when the original name really contained an underscore.
func (s *Store) ReplaceSubTests(pkgPath string, discovered map[string][]domain.SubTestOutcome) {
	if len(discovered) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eachTest(pkgPath, func(t *domain.Test) bool {
		outcomes, ok := discovered[t.Name]
		if !ok {
			return false
		}

		// Drop stale side-map entries for this parent before rebuilding
		// the list, so a removed sub-test's status cannot come back.
		prefix := t.Name + "/"
		for k := range s.subStatus {
			if k.pkgPath == t.PackagePath && strings.HasPrefix(k.name, prefix) {
				delete(s.subStatus, k)
			}
		}

		subs := make([]domain.SubTest, 0, len(outcomes))
		for _, o := range outcomes {
			sub := domain.SubTest{
				Name:            strings.ReplaceAll(o.RawName, "_", " "),
				FullName:        t.Name + "/" + o.RawName,
				ParentName:      t.Name,
				File:            t.File,
				PackagePath:     t.PackagePath,
				Status:          o.Status,
				DurationSeconds: o.DurationSeconds,
			}
			s.subStatus[statusKey{sub.PackagePath, sub.FullName}] = statusEntry{sub.Status, sub.DurationSeconds}
			subs = append(subs, sub)
		}
		t.SubTests = subs
		return false
	})
}

// ClearStatuses forgets all remembered statuses, both on the live tree and
// in the side maps.
func (s *Store) ClearStatuses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testStatus = make(map[statusKey]statusEntry)
	s.subStatus = make(map[statusKey]statusEntry)
	s.eachTest("", func(t *domain.Test) bool {
		t.Status = domain.StatusUnknown
		t.DurationSeconds = nil
		for i := range t.SubTests {
			t.SubTests[i].Status = domain.StatusUnknown
			t.SubTests[i].DurationSeconds = nil
		}
		return false
	})
}

// eachTest visits tests in traversal order, restricted to one package when
// pkgPath is non-empty. The visitor returns true to stop early.
func (s *Store) eachTest(pkgPath string, visit func(*domain.Test) bool) {
	for mi := range s.modules {
		for pi := range s.modules[mi].Packages {
			pkg := &s.modules[mi].Packages[pi]
			if pkgPath != "" && pkg.Path != pkgPath {
				continue
			}
			for fi := range pkg.Files {
				for ti := range pkg.Files[fi].Tests {
					if visit(&pkg.Files[fi].Tests[ti]) {
						return
					}
				}
			}
		}
	}
}
