package commands

import (
	"fmt"

	"gte/internal/config"
	"gte/internal/discovery"
	"gte/internal/domain"
	"gte/internal/execution"
	"gte/internal/flagstore"
	"gte/internal/hierarchy"
	"gte/internal/history"
	"gte/internal/parser"
	"gte/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	discovery *discovery.Discovery
	builder   *hierarchy.Builder
	store     *hierarchy.Store
	executor  *execution.WorkerPool
	parser    parser.Parser
	ledger    *history.Ledger
	flagStore *flagstore.Store
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	disc *discovery.Discovery,
	builder *hierarchy.Builder,
	store *hierarchy.Store,
	executor *execution.WorkerPool,
	transcriptParser parser.Parser,
	ledger *history.Ledger,
	flagStore *flagstore.Store,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		discovery: disc,
		builder:   builder,
		store:     store,
		executor:  executor,
		parser:    transcriptParser,
		ledger:    ledger,
		flagStore: flagStore,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Discover and install the tree
	parsed, err := rc.discovery.Discover(ctx, rc.config.GetScanPath(), rc.config.Flags.NameFilter)
	if err != nil {
		return err
	}
	rc.store.ReplaceTree(rc.builder.Build(parsed))

	snapshot := rc.store.Modules()
	pkgDirs := packageDirs(snapshot)
	if len(pkgDirs) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// Everything scheduled is marked running up front; completed durations
	// survive this transition.
	forEachTest(snapshot, func(t domain.Test) {
		rc.store.SetTestStatus(t.Name, t.PackagePath, domain.StatusRunning, nil)
		for _, s := range t.SubTests {
			rc.store.SetSubTestStatus(s.ParentName, s.FullName, s.PackagePath, domain.StatusRunning, nil)
		}
	})

	// Compose the invocation from the persisted flag selections
	runFilter := rc.config.Flags.RunFilter
	testArgs := rc.flagStore.ComposeArgs(runFilter)
	if runFilter != "" {
		testArgs = append(testArgs, "-run", runFilter)
	}

	progressBar := ui.NewProgressBar(len(pkgDirs))
	rc.executor.SetProgress(progressBar)

	runs, duration, err := rc.executor.Execute(ctx, pkgDirs, testArgs)
	if err != nil {
		return err
	}

	// Reconcile every transcript into the tree
	for _, run := range runs {
		for _, outcome := range rc.parser.ParseTests(run.Output) {
			rc.store.SetTestStatus(outcome.Name, run.PackagePath, outcome.Status, outcome.DurationSeconds)
		}
		rc.store.ReplaceSubTests(run.PackagePath, rc.parser.ParseSubTests(run.Output))
	}

	// Tests the transcript never mentioned (filtered out, or the package
	// failed to build) drop back to unknown instead of staying running.
	// Sub-tests get the same sweep so a skipped parent does not strand them.
	final := rc.store.Modules()
	forEachTest(final, func(t domain.Test) {
		if t.Status == domain.StatusRunning {
			rc.store.SetTestStatus(t.Name, t.PackagePath, domain.StatusUnknown, nil)
		}
		for _, s := range t.SubTests {
			if s.Status == domain.StatusRunning {
				rc.store.SetSubTestStatus(s.ParentName, s.FullName, s.PackagePath, domain.StatusUnknown, nil)
			}
		}
	})

	results := collectResults(rc.store.Modules())
	rc.ledger.Record(runLabel(rc.config), results)

	rc.formatter.PrintRunSummary(results, duration, rc.config.Workers)
	return nil
}

func runLabel(cfg *config.Config) string {
	if cfg.Flags.RunFilter != "" {
		return fmt.Sprintf("run=%s", cfg.Flags.RunFilter)
	}
	if cfg.Flags.NameFilter != "" {
		return fmt.Sprintf("files=%s", cfg.Flags.NameFilter)
	}
	return "all tests"
}

func packageDirs(modules []domain.Module) []string {
	var dirs []string
	for _, m := range modules {
		for _, p := range m.Packages {
			dirs = append(dirs, p.Path)
		}
	}
	return dirs
}

func forEachTest(modules []domain.Module, visit func(domain.Test)) {
	for _, m := range modules {
		for _, p := range m.Packages {
			for _, f := range p.Files {
				for _, t := range f.Tests {
					visit(t)
				}
			}
		}
	}
}

// collectResults snapshots per-test outcomes for the history ledger.
func collectResults(modules []domain.Module) []domain.RunResult {
	var results []domain.RunResult
	forEachTest(modules, func(t domain.Test) {
		results = append(results, domain.RunResult{
			TestName:        t.Name,
			PackagePath:     t.PackagePath,
			File:            t.File,
			Status:          t.Status,
			DurationSeconds: t.DurationSeconds,
		})
	})
	return results
}
