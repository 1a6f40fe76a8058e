package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gte/internal/config"
	"gte/internal/discovery"
	"gte/internal/hierarchy"
	"gte/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	discovery *discovery.Discovery
	builder   *hierarchy.Builder
	store     *hierarchy.Store
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	disc *discovery.Discovery,
	builder *hierarchy.Builder,
	store *hierarchy.Store,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		discovery: disc,
		builder:   builder,
		store:     store,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	parsed, err := lc.discovery.Discover(cmd.Context(), lc.config.GetScanPath(), lc.config.Flags.NameFilter)
	if err != nil {
		return err
	}

	lc.store.ReplaceTree(lc.builder.Build(parsed))
	modules := lc.store.Modules()

	if len(modules) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTree(modules, lc.config.Flags.SubTests)
	return nil
}
