package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gte/internal/config"
	"gte/internal/flagstore"
	"gte/internal/ui"
)

// FlagsCommand handles the flags command and its subcommands
type FlagsCommand struct {
	config    *config.Config
	store     *flagstore.Store
	formatter *ui.Formatter
}

// NewFlagsCommand creates a new FlagsCommand
func NewFlagsCommand(cfg *config.Config, store *flagstore.Store, formatter *ui.Formatter) *FlagsCommand {
	return &FlagsCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
	}
}

// Show prints the flag table
func (fc *FlagsCommand) Show(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, f := range fc.store.Flags() {
		active := ""
		if fc.store.IsActive(f.ID) {
			active = "✓"
		}
		value := ""
		if f.RequiresValue {
			value = fc.store.Value(f.ID)
		}
		rows = append(rows, []string{f.ID, f.Token, active, value, f.Description})
	}
	fc.formatter.PrintFlags(rows)
	return nil
}

// Enable activates a flag
func (fc *FlagsCommand) Enable(cmd *cobra.Command, args []string) error {
	if err := fc.store.Enable(args[0]); err != nil {
		return err
	}
	color.Green("✓ %s enabled", args[0])
	return nil
}

// Disable deactivates a flag
func (fc *FlagsCommand) Disable(cmd *cobra.Command, args []string) error {
	if err := fc.store.Disable(args[0]); err != nil {
		return err
	}
	color.Green("✓ %s disabled", args[0])
	return nil
}

// Set stores a flag value
func (fc *FlagsCommand) Set(cmd *cobra.Command, args []string) error {
	if err := fc.store.SetValue(args[0], args[1]); err != nil {
		return err
	}
	color.Green("✓ %s = %s", args[0], args[1])
	return nil
}
