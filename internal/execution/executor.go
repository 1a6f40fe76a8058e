package execution

import (
	"context"
	"time"

	"gte/internal/domain"
)

// Executor executes the tests of a set of packages and returns one raw
// transcript per package.
type Executor interface {
	Execute(ctx context.Context, pkgDirs []string, args []string) ([]domain.PackageRun, time.Duration, error)
}
