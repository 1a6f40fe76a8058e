package domain

import "time"

// PackageRun is the raw outcome of executing the tests of one package.
type PackageRun struct {
	PackagePath string        // directory the runner was invoked in
	Success     bool          // false when the process exited non-zero
	Output      string        // combined stdout+stderr transcript
	Err         error         // process-level error, not a test failure
	Duration    time.Duration // wall time of the invocation
}

// TestOutcome is one test-level line recovered from a run transcript.
type TestOutcome struct {
	Name            string
	Status          Status
	DurationSeconds *float64
}

// SubTestOutcome is one sub-test occurrence recovered from a run transcript.
// RawName is the run-matching form; an underscore in it may stand for either
// a space or a literal underscore in the original name, and that ambiguity
// cannot be resolved from the transcript alone.
type SubTestOutcome struct {
	RawName         string
	Status          Status
	DurationSeconds *float64
}

// RunResult is one test's outcome as recorded in the run history.
type RunResult struct {
	TestName        string   `json:"test_name"`
	PackagePath     string   `json:"package_path"`
	File            string   `json:"file"`
	Status          Status   `json:"status"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

// RunHistoryEntry is an immutable snapshot of one completed run.
type RunHistoryEntry struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Timestamp time.Time   `json:"timestamp"`
	Results   []RunResult `json:"results"`
}
