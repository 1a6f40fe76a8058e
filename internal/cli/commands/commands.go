package commands

import (
	"gte/internal/cli"
	"gte/internal/config"
	"gte/internal/discovery"
	"gte/internal/execution"
	"gte/internal/flagstore"
	"gte/internal/hierarchy"
	"gte/internal/history"
	"gte/internal/parser"
	"gte/internal/storage"
	"gte/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	History *HistoryCommand
	Flags   *FlagsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	testParser := discovery.NewParser()
	resolver := discovery.NewResolver()
	disc := discovery.NewDiscovery(scanner, filter, testParser, resolver, cfg.Workers)
	builder := hierarchy.NewBuilder()
	store := hierarchy.NewStore()
	transcriptParser := parser.NewGoTestParser()
	runner := execution.NewGoTestRunner(cfg)
	executor := execution.NewWorkerPool(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	ledger := history.NewLedger(cfg.HistoryCapacity, jsonStorage)
	flagStore := flagstore.NewStore(jsonStorage)
	formatter := ui.NewFormatter(cfg)
	historyViewer := ui.NewHistoryViewer()

	return &Commands{
		Run:     NewRunCommand(cfg, disc, builder, store, executor, transcriptParser, ledger, flagStore, formatter),
		List:    NewListCommand(cfg, disc, builder, store, formatter),
		History: NewHistoryCommand(cfg, ledger, formatter, historyViewer),
		Flags:   NewFlagsCommand(cfg, flagStore, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run discovered tests",
		Long:  "Discover test functions, execute their packages in parallel, and reconcile the transcripts back into the tree",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of packages to run in parallel")
	runCmd.Flags().StringVarP(&flags.ScanPath, "scan-path", "s", "", "Path where test discovery should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*store_test.go')")
	runCmd.Flags().StringVarP(&flags.RunFilter, "run", "r", "", "Run only tests matching this pattern (overrides the stored filter flag)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list the module/package/file/test tree without executing anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*store_test.go')")
	listCmd.Flags().StringVarP(&flags.ScanPath, "scan-path", "s", "", "Path where test discovery should start")
	listCmd.Flags().BoolVarP(&flags.SubTests, "sub-tests", "c", false, "Include statically known sub-tests")
	rootCmd.AddCommand(listCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past runs",
		Long:  "Display recorded runs, most recent first, in an interactive viewer",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the history instead of opening the viewer")
	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recorded runs",
		RunE:  c.History.Clear,
	})
	rootCmd.AddCommand(historyCmd)

	// Flags command
	flagsCmd := &cobra.Command{
		Use:   "flags",
		Short: "Show persisted run flags",
		RunE:  c.Flags.Show,
	}
	flagsCmd.AddCommand(&cobra.Command{
		Use:   "enable <flag>",
		Short: "Add a flag to the active set",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Flags.Enable,
	})
	flagsCmd.AddCommand(&cobra.Command{
		Use:   "disable <flag>",
		Short: "Remove a flag from the active set",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Flags.Disable,
	})
	flagsCmd.AddCommand(&cobra.Command{
		Use:   "set <flag> <value>",
		Short: "Store a value for a flag that takes one",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Flags.Set,
	})
	rootCmd.AddCommand(flagsCmd)
}
