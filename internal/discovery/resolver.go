package discovery

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Resolver finds the module that owns a test file by searching parent
// directories for a go.mod manifest. Resolution never fails: a missing or
// malformed manifest degrades to directory-name defaults instead of
// aborting discovery.
type Resolver struct{}

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve walks upward from the file's directory until a go.mod is found or
// the filesystem root is reached. It returns the manifest's directory and
// the declared module name. Without a manifest the scan root stands in as
// the module root, named after its base directory.
func (r *Resolver) Resolve(filePath, scanRoot string) (rootPath, name string) {
	dir := filepath.Dir(filePath)
	for {
		manifest := filepath.Join(dir, "go.mod")
		if info, err := os.Stat(manifest); err == nil && !info.IsDir() {
			return dir, r.moduleName(manifest, dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	root := filepath.Clean(scanRoot)
	return root, filepath.Base(root)
}

// moduleName reads the module declaration from a manifest, falling back to
// the directory's base name when the manifest cannot be read or parsed.
func (r *Resolver) moduleName(manifest, dir string) string {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return filepath.Base(dir)
	}
	mf, err := modfile.ParseLax(manifest, data, nil)
	if err != nil || mf.Module == nil || mf.Module.Mod.Path == "" {
		return filepath.Base(dir)
	}
	return mf.Module.Mod.Path
}
