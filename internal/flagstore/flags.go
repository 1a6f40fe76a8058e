package flagstore

// Flag describes one known run flag.
type Flag struct {
	ID            string // stable identifier used in persisted state
	Token         string // literal token passed to the runner
	Description   string
	DefaultActive bool   // activated for users who have not seen it yet
	RequiresValue bool   // emitted as Token=value
	DefaultValue  string // used when the user has not stored a value
	FilterPattern bool   // suppressed when the caller supplies its own filter
}

// KnownFlags are the run flags the store manages, in emission order.
// Verbose stays default-active: without it the transcript carries no
// sub-test markers and dynamic discovery finds nothing.
var KnownFlags = []Flag{
	{ID: "verbose", Token: "-v", Description: "verbose transcript with per-test markers", DefaultActive: true},
	{ID: "count", Token: "-count", Description: "disable result caching", DefaultActive: true, RequiresValue: true, DefaultValue: "1"},
	{ID: "race", Token: "-race", Description: "enable the race detector"},
	{ID: "failfast", Token: "-failfast", Description: "stop after the first failure"},
	{ID: "cover", Token: "-cover", Description: "report coverage"},
	{ID: "timeout", Token: "-timeout", Description: "per-invocation timeout", RequiresValue: true, DefaultValue: "10m"},
	{ID: "run", Token: "-run", Description: "filter pattern", RequiresValue: true, DefaultValue: ".", FilterPattern: true},
}
