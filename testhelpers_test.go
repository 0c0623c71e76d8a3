package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository with a linear history
// A -> B -> C and returns its path and branch name.
func createTestRepo(t *testing.T) (string, string) {
	t.Helper()

	repoDir := t.TempDir()

	repo, err := gogit.PlainInit(repoDir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	now := time.Now()
	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		full := filepath.Join(repoDir, name)
		if err := os.WriteFile(full, []byte(name+"\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("Add: %v", err)
		}
		sig := &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  now.Add(time.Duration(i-3) * time.Hour),
		}
		if _, err := wt.Commit("add "+name, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	return repoDir, head.Name().Short()
}

// writeFakeRenderer creates a stand-in for mmdc that copies its -i input to
// its -o output.
func writeFakeRenderer(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake renderer script requires a POSIX shell")
	}

	script := `#!/bin/sh
in=""
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -i) in="$2"; shift 2 ;;
    -o) out="$2"; shift 2 ;;
    *) shift ;;
  esac
done
cp "$in" "$out"
`
	path := filepath.Join(t.TempDir(), "fake-mmdc")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
