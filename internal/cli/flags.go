package cli

import "gte/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers    int
	ScanPath   string
	NameFilter string
	RunFilter  string
	SubTests   bool
	Plain      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:    f.Workers,
		ScanPath:   f.ScanPath,
		NameFilter: f.NameFilter,
		RunFilter:  f.RunFilter,
		SubTests:   f.SubTests,
		Plain:      f.Plain,
	}
}
