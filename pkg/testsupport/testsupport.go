// Package testsupport collects helpers shared by the package test suites:
// contexts, golden-file management, and diff reporting.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Context returns the context used by tests. Centralised so timeouts can be
// added in one place if suites start exercising slow converters.
func Context() context.Context {
	return context.Background()
}

// CompareGolden reports a readable diff between expected and actual output,
// empty when they match.
func CompareGolden(want, got string) string {
	return cmp.Diff(want, got)
}

// WriteMaybeGolden writes output to the golden path when UPDATE_GOLDENS is
// set, reporting whether it did so (callers usually return early after an
// update pass).
func WriteMaybeGolden(t *testing.T, path string, output []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, output, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden loads a golden file, failing the test when it is absent.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with UPDATE_GOLDENS=1 to create)", path, err)
	}
	return data
}
