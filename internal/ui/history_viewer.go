package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gte/internal/domain"
	"gte/internal/history"
)

// HistoryViewer browses the run-history ledger in an interactive TUI: run
// entries on the left, per-test results of the selected run on the right.
type HistoryViewer struct{}

// NewHistoryViewer creates a new HistoryViewer
func NewHistoryViewer() *HistoryViewer {
	return &HistoryViewer{}
}

// View displays the ledger entries, most recent first.
func (hv *HistoryViewer) View(entries []domain.RunHistoryEntry) error {
	if len(entries) == 0 {
		color.Yellow("No runs recorded")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)
	list.SetBorder(true).SetTitle(" Runs ")

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Results ")

	for _, e := range entries {
		failed := 0
		for _, r := range e.Results {
			if r.Status == domain.StatusFailed {
				failed++
			}
		}
		secondary := fmt.Sprintf("[green]%d passed[white]", len(e.Results)-failed)
		if failed > 0 {
			secondary = fmt.Sprintf("[red]%d failed[white] · %s", failed, secondary)
		}
		list.AddItem(e.Label, secondary, 0, nil)
	}

	showEntry := func(index int) {
		if index < 0 || index >= len(entries) {
			return
		}
		e := entries[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]%s[white]\n\n", e.Label)
		for _, r := range history.SortResults(e.Results) {
			dur := ""
			if r.DurationSeconds != nil {
				dur = fmt.Sprintf(" [gray](%.2fs)[white]", *r.DurationSeconds)
			}
			switch r.Status {
			case domain.StatusFailed:
				fmt.Fprintf(&b, "[red]✗ %s[white]%s\n", r.TestName, dur)
			case domain.StatusPassed:
				fmt.Fprintf(&b, "[green]✓ %s[white]%s\n", r.TestName, dur)
			default:
				fmt.Fprintf(&b, "[yellow]? %s[white]\n", r.TestName)
			}
			fmt.Fprintf(&b, "  [gray]%s[white]\n", r.PackagePath)
		}
		detailsView.SetText(b.String())
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showEntry(index)
	})
	showEntry(0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
