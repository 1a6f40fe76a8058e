package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"gte/internal/domain"
)

// Discovery runs one full discovery pass: scan for test files, resolve each
// file's module, parse its tests. Files are parsed concurrently but the
// result is returned as one complete set, so callers can install it
// atomically.
type Discovery struct {
	scanner  *Scanner
	filter   *Filter
	parser   TestParser
	resolver *Resolver
	workers  int
}

// NewDiscovery creates a Discovery with the given parallelism.
func NewDiscovery(scanner *Scanner, filter *Filter, parser TestParser, resolver *Resolver, workers int) *Discovery {
	if workers <= 0 {
		workers = 1
	}
	return &Discovery{
		scanner:  scanner,
		filter:   filter,
		parser:   parser,
		resolver: resolver,
		workers:  workers,
	}
}

// Discover scans root for test files, applies the optional file-name
// pattern, and parses every file. An unreadable file is logged and skipped;
// partial results are preferred over aborting the pass.
func (d *Discovery) Discover(ctx context.Context, root, namePattern string) ([]domain.ParsedFile, error) {
	paths, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	paths = d.filter.FilterByName(paths, namePattern)

	var mu sync.Mutex
	parsed := make([]domain.ParsedFile, 0, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pf, err := d.parseOne(path, root)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
				return nil
			}
			mu.Lock()
			parsed = append(parsed, pf)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Concurrent parsing scrambles order; restore it so builds are
	// deterministic for identical inputs.
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Path < parsed[j].Path })

	return parsed, nil
}

func (d *Discovery) parseOne(path, scanRoot string) (domain.ParsedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ParsedFile{}, fmt.Errorf("read file: %w", err)
	}

	abs := path
	if a, err := filepath.Abs(path); err == nil {
		abs = a
	}

	text := string(content)
	if a, err := filepath.Abs(scanRoot); err == nil {
		scanRoot = a
	}
	root, name := d.resolver.Resolve(abs, scanRoot)

	return domain.ParsedFile{
		Path:        abs,
		Dir:         filepath.Dir(abs),
		PackageName: ParsePackageName(text),
		ModuleRoot:  root,
		ModuleName:  name,
		Tests:       d.parser.ParseTests(abs, text),
	}, nil
}
