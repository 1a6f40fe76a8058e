package main

import (
	"fmt"
	"os"

	"gte/internal/cli"
	"gte/internal/cli/commands"
	"gte/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gte",
		Short:   "Go test explorer",
		Long:    `Discovers the module/package/file/test tree of a Go workspace, runs packages in parallel, reconciles the run transcripts back into the tree, and keeps a bounded history of past runs.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
