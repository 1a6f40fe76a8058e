package execution

import (
	"context"
	"sync"
	"time"

	"gte/internal/config"
	"gte/internal/domain"
)

// Progress receives completion updates during a run.
type Progress interface {
	Update(completed, passed, failed int)
	Finish()
}

// WorkerPool runs packages across a pool of workers. Each worker pulls the
// next package from a shared queue, so slow packages do not starve the rest.
type WorkerPool struct {
	config   *config.Config
	runner   Runner
	progress Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner Runner) *WorkerPool {
	return &WorkerPool{config: cfg, runner: runner}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every package with the same argument list and collects the
// transcripts. Order of results follows completion, not submission.
func (wp *WorkerPool) Execute(ctx context.Context, pkgDirs []string, args []string) ([]domain.PackageRun, time.Duration, error) {
	if len(pkgDirs) == 0 {
		return nil, 0, nil
	}

	queue := make(chan string, len(pkgDirs))
	results := make(chan domain.PackageRun, len(pkgDirs))
	for _, dir := range pkgDirs {
		queue <- dir
	}
	close(queue)

	var mu sync.Mutex
	var completed, passed, failed int
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dir := range queue {
				result := wp.runner.Run(ctx, dir, args)
				results <- result
				mu.Lock()
				completed++
				if result.Success {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.PackageRun
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
