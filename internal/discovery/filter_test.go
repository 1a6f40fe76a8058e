package discovery

import (
	"reflect"
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	files := []string{
		"/src/a/store_test.go",
		"/src/a/parser_test.go",
		"/src/b/store_test.go",
		"/src/b/ledger_test.go",
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern keeps everything",
			pattern:  "",
			expected: files,
		},
		{
			name:    "wildcard match",
			pattern: "*store*",
			expected: []string{
				"/src/a/store_test.go",
				"/src/b/store_test.go",
			},
		},
		{
			name:    "exact wildcard suffix",
			pattern: "*ledger_test.go",
			expected: []string{
				"/src/b/ledger_test.go",
			},
		},
		{
			name:    "plain substring",
			pattern: "parser",
			expected: []string{
				"/src/a/parser_test.go",
			},
		},
		{
			name:     "no match",
			pattern:  "*nothing*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterByName(files, tt.pattern)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
