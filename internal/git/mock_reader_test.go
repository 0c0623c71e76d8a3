package git

import (
	"context"
	"errors"
	"testing"
)

func TestMockHistoryReader(t *testing.T) {
	mock := &MockHistoryReader{
		Commits:      NewCommitSet("c1", "c2"),
		Parents:      map[string]CommitSet{"c2": NewCommitSet("c1")},
		ParentErrs:   map[string]error{"bad": errors.New("object missing")},
		WantedBranch: "main",
	}
	ctx := context.Background()

	commits, err := mock.ListBranchCommits(ctx, "main")
	if err != nil {
		t.Fatalf("ListBranchCommits: %v", err)
	}
	if !commits.Equal(NewCommitSet("c1", "c2")) {
		t.Fatalf("commits = %v", commits.Sorted())
	}

	if _, err := mock.ListBranchCommits(ctx, "other"); err == nil {
		t.Fatalf("expected error for non-matching branch")
	}

	parents, err := mock.ListCommitParents(ctx, "c2")
	if err != nil {
		t.Fatalf("ListCommitParents: %v", err)
	}
	if !parents.Equal(NewCommitSet("c1")) {
		t.Fatalf("parents = %v", parents.Sorted())
	}

	// Unknown commits behave like roots.
	roots, err := mock.ListCommitParents(ctx, "c1")
	if err != nil {
		t.Fatalf("ListCommitParents(c1): %v", err)
	}
	if roots.Len() != 0 {
		t.Fatalf("parents(c1) = %v, expected empty", roots.Sorted())
	}

	if _, err := mock.ListCommitParents(ctx, "bad"); err == nil {
		t.Fatalf("expected forced parent lookup error")
	}

	if mock.ParentCalls != 3 {
		t.Fatalf("ParentCalls = %d, expected 3", mock.ParentCalls)
	}
}
