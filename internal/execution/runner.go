package execution

import (
	"context"
	"os"
	"os/exec"
	"time"

	"gte/internal/config"
	"gte/internal/domain"
)

// Runner produces the raw transcript of one package's test invocation. The
// engine never inspects the process beyond its combined output; everything
// it learns about a run comes from parsing the transcript.
type Runner interface {
	Run(ctx context.Context, pkgDir string, args []string) domain.PackageRun
}

// GoTestRunner invokes go test in the package directory.
type GoTestRunner struct {
	config *config.Config
}

// NewGoTestRunner creates a new GoTestRunner
func NewGoTestRunner(cfg *config.Config) *GoTestRunner {
	return &GoTestRunner{config: cfg}
}

// Run executes go test for a single package. A non-zero exit from failing
// tests is not an error here; the transcript carries the failures.
func (r *GoTestRunner) Run(ctx context.Context, pkgDir string, args []string) domain.PackageRun {
	cmdArgs := append([]string{"test"}, args...)
	cmd := exec.CommandContext(ctx, "go", cmdArgs...)
	cmd.Dir = pkgDir
	cmd.Env = os.Environ()

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.PackageRun{
		PackagePath: pkgDir,
		Success:     err == nil,
		Output:      string(output),
		Err:         err,
		Duration:    time.Since(start),
	}
}
