package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"gte/internal/config"
	"gte/internal/domain"
	"gte/internal/history"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintTree prints the discovered tree as a table, one row per test. With
// subTests enabled, discovered sub-tests get their own indented rows and a
// pending table-driven test shows a run-to-discover placeholder.
func (f *Formatter) PrintTree(modules []domain.Module, subTests bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Module", "Package", "File", "Test", "Line"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	total := 0
	for _, m := range modules {
		for _, p := range m.Packages {
			for _, file := range p.Files {
				base := filepath.Base(file.Path)
				for _, t := range file.Tests {
					total++
					table.Append([]string{m.Name, p.DisplayName, base, t.Name, fmt.Sprintf("%d", t.Line)})
					if !subTests || t.SubTests == nil {
						continue
					}
					if len(t.SubTests) == 0 {
						table.Append([]string{"", "", "", "  └ (run to discover)", ""})
						continue
					}
					for _, s := range t.SubTests {
						line := ""
						if s.Line > 0 {
							line = fmt.Sprintf("%d", s.Line)
						}
						table.Append([]string{"", "", "", "  └ " + s.Name, line})
					}
				}
			}
		}
	}

	table.Render()
	fmt.Println()
	color.Green("✓ %d test(s) in %d module(s)", total, len(modules))
}

// PrintRunSummary prints the outcome of one run: counts, duration, then a
// per-package listing of failures.
func (f *Formatter) PrintRunSummary(results []domain.RunResult, duration time.Duration, workers int) {
	passed, failed, unknown := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			passed++
		case domain.StatusFailed:
			failed++
		default:
			unknown++
		}
	}

	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════╗")
	color.Cyan("║                  Run Summary                  ║")
	color.Cyan("╚═══════════════════════════════════════════════╝")
	fmt.Printf("  %-12s ", "Tests")
	color.White("%d", len(results))
	fmt.Printf("  %-12s ", "Passed")
	color.Green("%d", passed)
	fmt.Printf("  %-12s ", "Failed")
	color.Red("%d", failed)
	if unknown > 0 {
		fmt.Printf("  %-12s ", "No result")
		color.Yellow("%d", unknown)
	}
	fmt.Printf("  %-12s ", "Duration")
	color.White("%.2fs", duration.Seconds())
	fmt.Printf("  %-12s ", "Workers")
	color.White("%d", workers)

	fmt.Println()
	if failed == 0 {
		color.Green("✓ All tests passed!")
		return
	}
	color.Red("✗ %d test(s) failed", failed)
	fmt.Println()
	f.printFailures(results)
}

// printFailures groups the failing results by package path.
func (f *Formatter) printFailures(results []domain.RunResult) {
	byPkg := make(map[string][]domain.RunResult)
	var pkgs []string
	for _, r := range history.SortResults(results) {
		if r.Status != domain.StatusFailed {
			continue
		}
		if _, ok := byPkg[r.PackagePath]; !ok {
			pkgs = append(pkgs, r.PackagePath)
		}
		byPkg[r.PackagePath] = append(byPkg[r.PackagePath], r)
	}
	sort.Strings(pkgs)

	for _, pkg := range pkgs {
		color.Cyan("%s", pkg)
		for _, r := range byPkg[pkg] {
			if r.DurationSeconds != nil {
				color.Red("  |_ %s (%.2fs)", r.TestName, *r.DurationSeconds)
			} else {
				color.Red("  |_ %s", r.TestName)
			}
		}
	}
}

// PrintHistory prints the ledger without the interactive viewer, most
// recent run first, failures at the top of each run.
func (f *Formatter) PrintHistory(entries []domain.RunHistoryEntry) {
	if len(entries) == 0 {
		color.Yellow("No runs recorded")
		return
	}
	for _, e := range entries {
		color.Cyan("%s", e.Label)
		for _, r := range history.SortResults(e.Results) {
			switch r.Status {
			case domain.StatusFailed:
				color.Red("  ✗ %s", r.TestName)
			case domain.StatusPassed:
				if r.DurationSeconds != nil {
					color.Green("  ✓ %s (%.2fs)", r.TestName, *r.DurationSeconds)
				} else {
					color.Green("  ✓ %s", r.TestName)
				}
			default:
				color.Yellow("  ? %s", r.TestName)
			}
		}
		fmt.Println()
	}
}

// PrintFlags prints the flag table with active markers and values.
func (f *Formatter) PrintFlags(rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Flag", "Token", "Active", "Value", "Description"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}
