package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCoreImportRestrictions keeps the resolution core free of any
// presentation, persistence or command code.
func TestCoreImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"autokeys/internal/keystroke",
		"autokeys/internal/view",
		"autokeys/internal/binding",
		"autokeys/internal/dispatch",
		"autokeys/internal/log", // required in all files
	}

	for _, dir := range []string{"./keystroke", "./view", "./binding", "./dispatch"} {
		checkImports(t, dir, allowedPrefixes, nil)
	}
}

// TestShortcutsImportRestrictions ensures the binder only sits on the core.
func TestShortcutsImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"autokeys/internal/tui",
		"autokeys/internal/cli",
		"autokeys/internal/store",
		"autokeys/internal/report",
		"autokeys/internal/lineage",
		"autokeys/internal/layout",
	}

	checkImports(t, "./shortcuts", nil, forbiddenPrefixes)
}

// TestTUIImportRestrictions ensures TUI never touches the history store or
// the command layer.
func TestTUIImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"autokeys/internal/store",
		"autokeys/internal/cli",
		"autokeys/internal/config", // options are passed in by the caller
	}

	checkImports(t, "./tui", nil, forbiddenPrefixes)
}

// TestStoreImportRestrictions keeps the store independent of resolution
// types so recorded runs stay readable after those types change.
func TestStoreImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"autokeys/internal/log",
	}

	checkImports(t, "./store", allowedPrefixes, nil)
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Skip standard library and third-party imports
			if !strings.HasPrefix(importPath, "autokeys/internal") {
				continue
			}

			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			if len(allowedPrefixes) > 0 {
				allowed := false
				for _, prefix := range allowedPrefixes {
					if strings.HasPrefix(importPath, prefix) {
						allowed = true
						break
					}
				}
				if !allowed {
					t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
				}
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
