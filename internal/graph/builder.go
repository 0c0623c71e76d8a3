package graph

import (
	"context"

	"github.com/masmgr/gitviz-go/internal/git"
)

// BuildOptions configures graph construction.
type BuildOptions struct {
	// LenientParents degrades a failed parent lookup to an empty set instead
	// of aborting the traversal. The failed commit is recorded in
	// DependencyGraph.Failed.
	LenientParents bool
}

// DefaultBuildOptions matches the reference behavior: one malformed commit
// does not block the whole graph.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{LenientParents: true}
}

// Builder folds per-commit parent lookups into a dependency graph.
type Builder struct {
	reader git.RepositoryReader
	opts   BuildOptions
}

// NewBuilder creates a builder over the given repository reader.
func NewBuilder(reader git.RepositoryReader, opts BuildOptions) *Builder {
	return &Builder{reader: reader, opts: opts}
}

// Build enumerates all commits reachable from the branch and resolves the
// direct parents of each. Deterministic given deterministic reader output.
func (b *Builder) Build(ctx context.Context, branch string) (*DependencyGraph, error) {
	commits, err := b.reader.ListBranchCommits(ctx, branch)
	if err != nil {
		return nil, err
	}

	g := &DependencyGraph{
		Parents: make(map[string]git.CommitSet, commits.Len()),
		Failed:  git.NewCommitSet(),
	}

	for sha := range commits {
		parents, err := b.reader.ListCommitParents(ctx, sha)
		if err != nil {
			if !b.opts.LenientParents {
				return nil, err
			}
			g.Parents[sha] = git.NewCommitSet()
			g.Failed.Add(sha)
			continue
		}
		g.Parents[sha] = parents
	}

	return g, nil
}
