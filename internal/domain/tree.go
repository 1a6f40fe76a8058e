package domain

// Status is the last observed execution state of a test or sub-test.
type Status string

const (
	StatusUnknown Status = ""
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
)

// Module is the top-level unit identified by a go.mod manifest.
type Module struct {
	Name     string
	RootPath string
	Packages []Package
}

// Package is a directory-scoped grouping of test files.
type Package struct {
	Path        string // absolute directory
	DisplayName string // module-relative import path, or declared package name at the root
	Files       []File
}

// File is one test source file.
type File struct {
	Path        string
	PackagePath string
	Tests       []Test
}

// Test is a top-level test, benchmark, example or fuzz function.
//
// SubTests has three states: nil for a plain test that is never expandable,
// an empty non-nil slice when a table-driven run call was detected but the
// concrete names are only knowable by running the test, and a populated
// slice once names are known from static analysis or prior run output.
type Test struct {
	Name            string
	Line            int // 1-based line of the function declaration
	File            string
	PackagePath     string
	Status          Status
	DurationSeconds *float64
	SubTests        []SubTest
}

// SubTest is a unit produced by a t.Run call nested inside a Test.
type SubTest struct {
	Name            string // display form, spaces preserved
	FullName        string // "Parent/raw_run_name", the form used by -run and in transcripts
	ParentName      string
	Line            int // 0 when the definition site is not statically known
	File            string
	PackagePath     string
	Status          Status
	DurationSeconds *float64
}

// ParsedFile is one source file after static parsing, with its resolved
// module context attached. Input to the hierarchy builder.
type ParsedFile struct {
	Path        string
	Dir         string
	PackageName string // declared package clause name
	ModuleRoot  string
	ModuleName  string
	Tests       []Test
}

// Clone returns a deep copy of the module.
func (m Module) Clone() Module {
	out := m
	out.Packages = make([]Package, len(m.Packages))
	for i, p := range m.Packages {
		out.Packages[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the package.
func (p Package) Clone() Package {
	out := p
	out.Files = make([]File, len(p.Files))
	for i, f := range p.Files {
		out.Files[i] = f.Clone()
	}
	return out
}

// Clone returns a deep copy of the file.
func (f File) Clone() File {
	out := f
	out.Tests = make([]Test, len(f.Tests))
	for i, t := range f.Tests {
		out.Tests[i] = t.Clone()
	}
	return out
}

// Clone returns a deep copy of the test, preserving the three-state
// distinction of SubTests.
func (t Test) Clone() Test {
	out := t
	out.DurationSeconds = cloneFloat(t.DurationSeconds)
	if t.SubTests != nil {
		out.SubTests = make([]SubTest, len(t.SubTests))
		for i, s := range t.SubTests {
			out.SubTests[i] = s
			out.SubTests[i].DurationSeconds = cloneFloat(s.DurationSeconds)
		}
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// CountTests returns the number of top-level tests in the module.
func (m Module) CountTests() int {
	count := 0
	for _, p := range m.Packages {
		for _, f := range p.Files {
			count += len(f.Tests)
		}
	}
	return count
}
