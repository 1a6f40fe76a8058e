package hierarchy

import (
	"path/filepath"
	"sort"
	"strings"

	"gte/internal/domain"
)

// Builder aggregates parsed files into the Module -> Package -> File -> Test
// tree. Every build is a full rebuild; nothing is carried over from a prior
// tree.
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build groups files by package directory, assigns each package to the
// module with the longest matching root-path prefix, and sorts every level
// lexicographically (modules by name, packages by display name, files by
// base name). Tests keep their source order.
func (b *Builder) Build(files []domain.ParsedFile) []domain.Module {
	if len(files) == 0 {
		return nil
	}

	// One candidate root per distinct manifest directory.
	roots := make(map[string]string) // root path -> module name
	var rootOrder []string
	for _, f := range files {
		if _, ok := roots[f.ModuleRoot]; !ok {
			roots[f.ModuleRoot] = f.ModuleName
			rootOrder = append(rootOrder, f.ModuleRoot)
		}
	}

	// Group files by package directory, keeping input order within a
	// package.
	pkgFiles := make(map[string][]domain.ParsedFile)
	var pkgOrder []string
	for _, f := range files {
		if _, ok := pkgFiles[f.Dir]; !ok {
			pkgOrder = append(pkgOrder, f.Dir)
		}
		pkgFiles[f.Dir] = append(pkgFiles[f.Dir], f)
	}

	moduleIdx := make(map[string]int)
	var modules []domain.Module

	for _, dir := range pkgOrder {
		root := longestRoot(dir, rootOrder)
		if root == "" {
			// Resolver guarantees every file carries some root; fall
			// back to the file's own.
			root = pkgFiles[dir][0].ModuleRoot
		}

		idx, ok := moduleIdx[root]
		if !ok {
			idx = len(modules)
			moduleIdx[root] = idx
			modules = append(modules, domain.Module{
				Name:     roots[root],
				RootPath: root,
			})
		}

		pkg := domain.Package{
			Path:        dir,
			DisplayName: displayName(dir, root, pkgFiles[dir][0].PackageName),
		}
		for _, f := range pkgFiles[dir] {
			pkg.Files = append(pkg.Files, domain.File{
				Path:        f.Path,
				PackagePath: dir,
				Tests:       append([]domain.Test(nil), f.Tests...),
			})
		}
		sort.Slice(pkg.Files, func(i, j int) bool {
			return filepath.Base(pkg.Files[i].Path) < filepath.Base(pkg.Files[j].Path)
		})
		modules[idx].Packages = append(modules[idx].Packages, pkg)
	}

	for i := range modules {
		pkgs := modules[i].Packages
		sort.Slice(pkgs, func(a, b int) bool { return pkgs[a].DisplayName < pkgs[b].DisplayName })
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })

	return modules
}

// longestRoot returns the candidate root that is an ancestor of dir and has
// the longest path, checking candidates in first-seen order so an
// equal-length tie keeps the first one found.
func longestRoot(dir string, candidates []string) string {
	best := ""
	for _, root := range candidates {
		if !isAncestor(root, dir) {
			continue
		}
		if len(root) > len(best) {
			best = root
		}
	}
	return best
}

func isAncestor(root, dir string) bool {
	if root == dir {
		return true
	}
	return strings.HasPrefix(dir, root+string(filepath.Separator))
}

// displayName is the module-relative import path of the package, or the
// declared package clause name for the module root itself.
func displayName(dir, root, declaredName string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		if declaredName != "" {
			return declaredName
		}
		return filepath.Base(dir)
	}
	return filepath.ToSlash(rel)
}
