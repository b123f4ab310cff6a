package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod at %s: %v", root, err)
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;31mtnt\x1b[0m"); got != "tnt" {
		t.Fatalf("expected escapes removed, got %q", got)
	}
}
