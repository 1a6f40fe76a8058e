package domain

// FlagState is the persisted flag configuration: which run flags are active,
// the user-entered value for flags that take one, and every flag identifier
// the user has ever been shown (used to auto-activate newly added defaults
// without resurrecting explicit deselections).
type FlagState struct {
	Active []string          `json:"active"`
	Values map[string]string `json:"values"`
	Seen   []string          `json:"seen"`
}
