package parser

import (
	"regexp"
	"strconv"
	"strings"

	"gte/internal/domain"
)

// Parser recovers test and sub-test outcomes from a raw run transcript.
type Parser interface {
	ParseTests(output string) []domain.TestOutcome
	ParseSubTests(output string) map[string][]domain.SubTestOutcome
}

// GoTestParser scans go test -v transcripts line by line. A transcript that
// matches none of the patterns yields empty results, never an error.
type GoTestParser struct{}

// NewGoTestParser creates a new GoTestParser
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

var (
	subStartPattern  = regexp.MustCompile(`^\s*=== RUN\s+([^/\s]+)/(\S+)\s*$`)
	subResultPattern = regexp.MustCompile(`^\s*--- (PASS|FAIL): ([^/\s]+)/(\S+) \((\d+(?:\.\d+)?)s\)`)

	testStartPattern  = regexp.MustCompile(`^=== RUN\s+([^/\s]+)\s*$`)
	testResultPattern = regexp.MustCompile(`^(?:\s*)--- (PASS|FAIL): ([^/\s]+) \((\d+(?:\.\d+)?)s\)`)
)

// ParseTests extracts top-level outcomes in transcript order. A start marker
// with no later result line is reported with an unknown status.
func (p *GoTestParser) ParseTests(output string) []domain.TestOutcome {
	var outcomes []domain.TestOutcome
	index := make(map[string]int)

	add := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(outcomes)
		outcomes = append(outcomes, domain.TestOutcome{Name: name})
		return index[name]
	}

	for _, line := range strings.Split(output, "\n") {
		if m := testStartPattern.FindStringSubmatch(line); m != nil {
			add(m[1])
			continue
		}
		if m := testResultPattern.FindStringSubmatch(line); m != nil {
			i := add(m[2])
			outcomes[i].Status = outcomeStatus(m[1])
			outcomes[i].DurationSeconds = parseSeconds(m[3])
		}
	}

	return outcomes
}

// ParseSubTests extracts sub-test occurrences grouped by parent test name,
// keeping each parent's sub-tests in first-appearance order. A start marker
// records the pair with an unknown outcome; a result marker overwrites or
// adds the pair's outcome and duration.
func (p *GoTestParser) ParseSubTests(output string) map[string][]domain.SubTestOutcome {
	discovered := make(map[string][]domain.SubTestOutcome)
	index := make(map[string]map[string]int)

	add := func(parent, raw string) int {
		if index[parent] == nil {
			index[parent] = make(map[string]int)
		}
		if i, ok := index[parent][raw]; ok {
			return i
		}
		index[parent][raw] = len(discovered[parent])
		discovered[parent] = append(discovered[parent], domain.SubTestOutcome{RawName: raw})
		return index[parent][raw]
	}

	for _, line := range strings.Split(output, "\n") {
		if m := subStartPattern.FindStringSubmatch(line); m != nil {
			add(m[1], m[2])
			continue
		}
		if m := subResultPattern.FindStringSubmatch(line); m != nil {
			i := add(m[2], m[3])
			discovered[m[2]][i].Status = outcomeStatus(m[1])
			discovered[m[2]][i].DurationSeconds = parseSeconds(m[4])
		}
	}

	return discovered
}

func outcomeStatus(token string) domain.Status {
	if token == "PASS" {
		return domain.StatusPassed
	}
	return domain.StatusFailed
}

func parseSeconds(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
