package hierarchy

import (
	"testing"

	"gte/internal/domain"
)

func parsedFile(path, dir, pkgName, root, modName string, tests ...domain.Test) domain.ParsedFile {
	return domain.ParsedFile{
		Path:        path,
		Dir:         dir,
		PackageName: pkgName,
		ModuleRoot:  root,
		ModuleName:  modName,
		Tests:       tests,
	}
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder()

	t.Run("empty input yields no modules", func(t *testing.T) {
		if got := builder.Build(nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("longest root prefix wins", func(t *testing.T) {
		files := []domain.ParsedFile{
			parsedFile("/work/outer/a_test.go", "/work/outer", "outer", "/work/outer", "example.com/outer"),
			parsedFile("/work/outer/inner/b_test.go", "/work/outer/inner", "inner", "/work/outer/inner", "example.com/inner"),
			// The deep package resolves to the inner manifest even though
			// both roots are ancestors.
			parsedFile("/work/outer/inner/deep/c_test.go", "/work/outer/inner/deep", "deep", "/work/outer/inner", "example.com/inner"),
		}

		modules := builder.Build(files)
		if len(modules) != 2 {
			t.Fatalf("expected 2 modules, got %d: %+v", len(modules), modules)
		}

		// Sorted by module name
		if modules[0].Name != "example.com/inner" || modules[1].Name != "example.com/outer" {
			t.Fatalf("unexpected module order: %s, %s", modules[0].Name, modules[1].Name)
		}

		inner := modules[0]
		if len(inner.Packages) != 2 {
			t.Fatalf("expected 2 packages in inner module, got %d", len(inner.Packages))
		}
		outer := modules[1]
		if len(outer.Packages) != 1 || outer.Packages[0].Path != "/work/outer" {
			t.Errorf("expected only /work/outer in outer module, got %+v", outer.Packages)
		}
	})

	t.Run("display names", func(t *testing.T) {
		files := []domain.ParsedFile{
			parsedFile("/work/demo/root_test.go", "/work/demo", "demo", "/work/demo", "example.com/demo"),
			parsedFile("/work/demo/internal/store/s_test.go", "/work/demo/internal/store", "store", "/work/demo", "example.com/demo"),
		}

		modules := builder.Build(files)
		if len(modules) != 1 {
			t.Fatalf("expected 1 module, got %d", len(modules))
		}
		pkgs := modules[0].Packages
		if len(pkgs) != 2 {
			t.Fatalf("expected 2 packages, got %d", len(pkgs))
		}
		// Root package shows its declared name, nested shows relative path;
		// packages sort lexicographically by display name.
		if pkgs[0].DisplayName != "demo" {
			t.Errorf("expected root display name demo, got %s", pkgs[0].DisplayName)
		}
		if pkgs[1].DisplayName != "internal/store" {
			t.Errorf("expected internal/store, got %s", pkgs[1].DisplayName)
		}
	})

	t.Run("files sort by base name within a package", func(t *testing.T) {
		files := []domain.ParsedFile{
			parsedFile("/work/demo/zeta_test.go", "/work/demo", "demo", "/work/demo", "example.com/demo"),
			parsedFile("/work/demo/alpha_test.go", "/work/demo", "demo", "/work/demo", "example.com/demo"),
		}

		modules := builder.Build(files)
		got := modules[0].Packages[0].Files
		if len(got) != 2 {
			t.Fatalf("expected 2 files, got %d", len(got))
		}
		if got[0].Path != "/work/demo/alpha_test.go" || got[1].Path != "/work/demo/zeta_test.go" {
			t.Errorf("unexpected file order: %s, %s", got[0].Path, got[1].Path)
		}
	})

	t.Run("repeated roots do not split the module", func(t *testing.T) {
		// Two files in one package reporting the same root must not split
		// the package or duplicate the module. Two distinct ancestors of
		// the same directory can never have equal length, so a repeat is
		// the only way a length tie can occur.
		files := []domain.ParsedFile{
			parsedFile("/work/demo/a_test.go", "/work/demo", "demo", "/work/demo", "example.com/demo"),
			parsedFile("/work/demo/b_test.go", "/work/demo", "demo", "/work/demo", "example.com/demo"),
		}

		modules := builder.Build(files)
		if len(modules) != 1 {
			t.Fatalf("expected 1 module, got %d", len(modules))
		}
		if len(modules[0].Packages) != 1 {
			t.Fatalf("expected 1 package, got %d", len(modules[0].Packages))
		}
		if len(modules[0].Packages[0].Files) != 2 {
			t.Errorf("expected 2 files, got %d", len(modules[0].Packages[0].Files))
		}
	})
}
