package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	// Create test directory structure
	testDirs := []string{
		"internal/store",
		"internal/api",
		"vendor",
		"testdata",
		".git",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	// Create files
	files := []string{
		"internal/store/store_test.go",
		"internal/store/store.go",
		"internal/api/api_test.go",
		"vendor/dep/dep_test.go",
		"testdata/fixture_test.go",
		".git/hooks_test.go",
		"main.go",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("package x"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor", "testdata"})

	t.Run("finds only test files outside skipped dirs", func(t *testing.T) {
		found, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 test files, got %d: %v", len(found), found)
		}
		for _, f := range found {
			base := filepath.Base(f)
			if base != "store_test.go" && base != "api_test.go" {
				t.Errorf("unexpected file found: %s", f)
			}
		}
	})

	t.Run("errors on missing root", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(tmpDir, "does-not-exist")); err == nil {
			t.Error("expected error for missing root")
		}
	})

	t.Run("errors when root is a file", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(tmpDir, "main.go")); err == nil {
			t.Error("expected error for non-directory root")
		}
	})
}
