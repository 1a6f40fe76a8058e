package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gte/internal/config"
	"gte/internal/history"
	"gte/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	ledger    *history.Ledger
	formatter *ui.Formatter
	viewer    *ui.HistoryViewer
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, ledger *history.Ledger, formatter *ui.Formatter, viewer *ui.HistoryViewer) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		ledger:    ledger,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	entries := hc.ledger.Entries()
	if hc.config.Flags.Plain {
		hc.formatter.PrintHistory(entries)
		return nil
	}
	return hc.viewer.View(entries)
}

// Clear removes all recorded runs
func (hc *HistoryCommand) Clear(cmd *cobra.Command, args []string) error {
	hc.ledger.Clear()
	color.Green("✓ Run history cleared")
	return nil
}
