package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver()

	t.Run("finds nearest manifest and module name", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte("module example.com/demo\n\ngo 1.22\n"), 0644); err != nil {
			t.Fatalf("failed to write go.mod: %v", err)
		}
		sub := filepath.Join(tmpDir, "pkg", "store")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		file := filepath.Join(sub, "store_test.go")
		if err := os.WriteFile(file, []byte("package store\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		root, name := resolver.Resolve(file, tmpDir)
		if root != tmpDir {
			t.Errorf("expected root %s, got %s", tmpDir, root)
		}
		if name != "example.com/demo" {
			t.Errorf("expected module name example.com/demo, got %s", name)
		}
	})

	t.Run("nested manifest shadows the outer one", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte("module example.com/outer\n"), 0644); err != nil {
			t.Fatalf("failed to write outer go.mod: %v", err)
		}
		inner := filepath.Join(tmpDir, "inner")
		if err := os.MkdirAll(inner, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(inner, "go.mod"), []byte("module example.com/inner\n"), 0644); err != nil {
			t.Fatalf("failed to write inner go.mod: %v", err)
		}
		file := filepath.Join(inner, "a_test.go")
		if err := os.WriteFile(file, []byte("package inner\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		root, name := resolver.Resolve(file, tmpDir)
		if root != inner {
			t.Errorf("expected root %s, got %s", inner, root)
		}
		if name != "example.com/inner" {
			t.Errorf("expected example.com/inner, got %s", name)
		}
	})

	t.Run("manifest without module declaration falls back to dir name", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte("go 1.22\n"), 0644); err != nil {
			t.Fatalf("failed to write go.mod: %v", err)
		}
		file := filepath.Join(tmpDir, "a_test.go")
		if err := os.WriteFile(file, []byte("package a\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		root, name := resolver.Resolve(file, tmpDir)
		if root != tmpDir {
			t.Errorf("expected root %s, got %s", tmpDir, root)
		}
		if name != filepath.Base(tmpDir) {
			t.Errorf("expected fallback name %s, got %s", filepath.Base(tmpDir), name)
		}
	})

	t.Run("no manifest falls back to the scan root", func(t *testing.T) {
		tmpDir := t.TempDir()
		sub := filepath.Join(tmpDir, "deep", "deeper")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		file := filepath.Join(sub, "a_test.go")
		if err := os.WriteFile(file, []byte("package deeper\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		root, name := resolver.Resolve(file, tmpDir)
		if root != tmpDir {
			t.Errorf("expected scan root fallback %s, got %s", tmpDir, root)
		}
		if name != filepath.Base(tmpDir) {
			t.Errorf("expected %s, got %s", filepath.Base(tmpDir), name)
		}
	})
}
