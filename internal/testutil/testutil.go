// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"testing"
)

// WithWorkingDir runs fn with dir as the current working directory and
// restores the previous directory afterwards.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
