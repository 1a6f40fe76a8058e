package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern using wildcard matching
// Supports patterns like "*store_test.go" or "*parser*"
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string

	for _, test := range tests {
		testName := filepath.Base(test)

		// filepath.Match supports * and ? wildcards
		matched, err := filepath.Match(pattern, testName)
		if err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		// For patterns like "*parser*" fall back to a substring match over
		// the non-wildcard parts.
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasNonEmpty := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmpty = true
				if !strings.Contains(testName, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasNonEmpty {
				filtered = append(filtered, test)
			}
			continue
		}

		// No wildcards: plain substring match
		if !strings.Contains(pattern, "?") && strings.Contains(testName, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}
