package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultScanPath is the default discovery root, relative to the project
	DefaultScanPath = "."
	// DefaultStateDir is where run history and flag selections are persisted
	DefaultStateDir = ".gte"
	// HistoryFile is the run-history file name inside the state dir
	HistoryFile = "history.json"
	// FlagStateFile is the flag-selection file name inside the state dir
	FlagStateFile = "flags.json"
	// DefaultWorkers is the default number of parallel package runs
	DefaultWorkers = 4
	// DefaultHistoryCapacity is how many past runs the ledger keeps
	DefaultHistoryCapacity = 10
)

// DefaultPathsToIgnore are the default directories to skip when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"testdata",
	"node_modules",
}
