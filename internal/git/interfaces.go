package git

import "context"

// RepositoryReader defines the query boundary to the version-control system.
// This abstraction allows for easier testing and potential alternative
// implementations (library binding, subprocess, RPC).
type RepositoryReader interface {
	// ListBranchCommits returns every commit reachable from the branch ref.
	ListBranchCommits(ctx context.Context, branch string) (CommitSet, error)

	// ListCommitParents returns the direct parents of a single commit.
	// A root commit yields an empty set.
	ListCommitParents(ctx context.Context, sha string) (CommitSet, error)

	// ListChangedFiles returns the paths touched by a single commit.
	ListChangedFiles(ctx context.Context, sha string) ([]string, error)
}

// BranchLister is implemented by readers that can enumerate local branches.
type BranchLister interface {
	ListBranches(ctx context.Context) ([]string, error)
}

// Compile-time interface conformance checks.
var (
	_ RepositoryReader = (*HistoryReader)(nil)
	_ RepositoryReader = (*MockHistoryReader)(nil)
	_ BranchLister     = (*HistoryReader)(nil)
)
