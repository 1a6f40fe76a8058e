package discovery

import (
	"path/filepath"
	"regexp"
	"strings"

	"gte/internal/domain"
)

// TestParser extracts test functions and their sub-tests from one source
// file's text. The stock implementation is a line-and-regex heuristic, not a
// real Go parser; the interface isolates that trade-off so it can be swapped
// out later without touching the hierarchy builder or the status tracker.
type TestParser interface {
	ParseTests(path string, content string) []domain.Test
}

// Parser is the regex-based TestParser.
//
// It recovers function boundaries by matching a test-style declaration and
// then tracking brace depth until the body closes. Braces inside string
// literals are miscounted; good-enough boundaries are all that is needed
// here, full correctness is not a goal.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

var (
	// Top-level test/benchmark/example/fuzz declaration: the reserved
	// prefix must be followed by an uppercase letter.
	testFuncPattern = regexp.MustCompile(`^func\s+((?:Test|Benchmark|Example|Fuzz)[A-Z]\w*)\s*\(`)

	// t.Run("literal name", ...) - may match several times on one line
	literalRunPattern = regexp.MustCompile(`\.Run\(\s*"((?:[^"\\]|\\.)*)"`)

	// t.Run(tc.name, ...) - first argument is not a string literal,
	// indicating a table-driven loop
	variableRunPattern = regexp.MustCompile(`\.Run\(\s*[^"\s)]`)

	// name: "literal" field inside a composite literal of test cases
	nameFieldPattern = regexp.MustCompile(`\bname\s*:\s*"((?:[^"\\]|\\.)*)"`)

	packageClausePattern = regexp.MustCompile(`(?m)^package\s+(\w+)`)
)

// ParsePackageName returns the declared package clause name, or "" when the
// file has none the heuristic can see.
func ParsePackageName(content string) string {
	if m := packageClausePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

// ParseTests finds all top-level test functions in the file content and the
// sub-tests inside each body. Comment-only lines are skipped entirely, so a
// brace in a comment never unbalances a body. Function declarations nested
// inside a tracked body are not tracked separately.
func (p *Parser) ParseTests(path string, content string) []domain.Test {
	pkgPath := filepath.Dir(path)
	lines := strings.Split(content, "\n")

	var tests []domain.Test
	inBody := false
	depth := 0
	bodyStart := 0
	var current domain.Test

	finish := func(endLine int) {
		body := lines[bodyStart : endLine+1]
		current.SubTests = p.parseSubTests(current.Name, path, pkgPath, body, bodyStart)
		tests = append(tests, current)
		inBody = false
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}

		if !inBody {
			m := testFuncPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			current = domain.Test{
				Name:        m[1],
				Line:        i + 1,
				File:        path,
				PackagePath: pkgPath,
			}
			bodyStart = i
			depth = braceDelta(line)
			if depth > 0 {
				inBody = true
			} else if strings.Contains(line, "{") {
				// declaration and body on one line
				finish(i)
			}
			// A declaration whose opening brace sits on a later line is
			// dropped here; gofmt never emits that layout.
			continue
		}

		depth += braceDelta(line)
		if depth <= 0 {
			finish(i)
		}
	}

	// Unbalanced body at EOF: close it with what we have rather than drop
	// the test.
	if inBody {
		finish(len(lines) - 1)
	}

	return tests
}

// parseSubTests extracts sub-tests from one function body.
//
// Literal run calls win: each one yields a sub-test in source order. When
// only variable-based run calls exist (a table-driven loop), the body is
// scanned for name: "..." fields as a fallback. A variable call with no
// recoverable names yields an empty, non-nil slice so the test is known to
// be expandable but its names must come from a run. No run call of any form
// leaves SubTests nil.
func (p *Parser) parseSubTests(parent, path, pkgPath string, body []string, bodyStart int) []domain.SubTest {
	var subs []domain.SubTest
	variableCall := false

	for idx, line := range body {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, m := range literalRunPattern.FindAllStringSubmatch(line, -1) {
			subs = append(subs, p.newSubTest(parent, m[1], path, pkgPath, bodyStart+idx+1))
		}
		if !variableCall && variableRunPattern.MatchString(line) {
			variableCall = true
		}
	}

	if len(subs) > 0 {
		return subs
	}
	if !variableCall {
		return nil
	}

	// Table-driven loop: recover names from composite-literal fields.
	for idx, line := range body {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, m := range nameFieldPattern.FindAllStringSubmatch(line, -1) {
			subs = append(subs, p.newSubTest(parent, m[1], path, pkgPath, bodyStart+idx+1))
		}
	}
	if subs == nil {
		subs = []domain.SubTest{}
	}
	return subs
}

func (p *Parser) newSubTest(parent, name, path, pkgPath string, line int) domain.SubTest {
	return domain.SubTest{
		Name:        name,
		FullName:    parent + "/" + strings.ReplaceAll(name, " ", "_"),
		ParentName:  parent,
		Line:        line,
		File:        path,
		PackagePath: pkgPath,
	}
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
