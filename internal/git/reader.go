package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader answers commit-ancestry queries against a Git repository.
// It supports two backends: the go-git library and the git CLI.
type HistoryReader struct {
	repo   *gogit.Repository // nil when the CLI backend is active
	opts   ReadOptions
	useCLI bool
}

// NewHistoryReader creates a reader for the repository at opts.RepoPath.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	useCLI := false
	switch opts.Backend {
	case BackendGitCLI:
		useCLI = true
	case BackendAuto:
		if _, err := exec.LookPath("git"); err == nil {
			useCLI = true
		}
	}

	if useCLI {
		if _, err := os.Stat(opts.RepoPath); err != nil {
			return nil, fmt.Errorf("repository path: %w", err)
		}
		return &HistoryReader{opts: opts, useCLI: true}, nil
	}

	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ListBranchCommits returns every commit reachable from the branch ref.
func (r *HistoryReader) ListBranchCommits(ctx context.Context, branch string) (CommitSet, error) {
	if r.useCLI {
		return r.listBranchCommitsGitCLI(ctx, branch)
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return nil, &QueryError{Op: "resolve-branch", Ref: branch, Err: err}
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: *hash})
	if err != nil {
		return nil, &QueryError{Op: "rev-list", Ref: branch, Err: err}
	}

	commits := NewCommitSet()
	err = iter.ForEach(func(c *object.Commit) error {
		commits.Add(c.Hash.String())
		return nil
	})
	if err != nil {
		return nil, &QueryError{Op: "rev-list", Ref: branch, Err: err}
	}

	return commits, nil
}

// ListCommitParents returns the direct parents of a single commit.
// A root commit yields an empty set.
func (r *HistoryReader) ListCommitParents(ctx context.Context, sha string) (CommitSet, error) {
	if r.useCLI {
		return r.listCommitParentsGitCLI(ctx, sha)
	}

	c, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, &QueryError{Op: "show-parents", Ref: sha, Err: err}
	}

	parents := NewCommitSet()
	for _, p := range c.ParentHashes {
		parents.Add(p.String())
	}
	return parents, nil
}

// ListChangedFiles returns the paths touched by a single commit. For a root
// commit this is every file in its tree.
func (r *HistoryReader) ListChangedFiles(ctx context.Context, sha string) ([]string, error) {
	if r.useCLI {
		return r.listChangedFilesGitCLI(ctx, sha)
	}

	c, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, &QueryError{Op: "show-files", Ref: sha, Err: err}
	}

	if c.NumParents() == 0 {
		var paths []string
		files, err := c.Files()
		if err != nil {
			return nil, &QueryError{Op: "show-files", Ref: sha, Err: err}
		}
		err = files.ForEach(func(f *object.File) error {
			paths = append(paths, f.Name)
			return nil
		})
		if err != nil {
			return nil, &QueryError{Op: "show-files", Ref: sha, Err: err}
		}
		return paths, nil
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, &QueryError{Op: "show-files", Ref: sha, Err: err}
	}
	patch, err := parent.Patch(c)
	if err != nil {
		return nil, &QueryError{Op: "show-files", Ref: sha, Err: err}
	}

	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()
		if to != nil {
			add(to.Path())
		} else if from != nil {
			add(from.Path())
		}
	}
	return paths, nil
}

// ListBranches returns the short names of all local branches.
func (r *HistoryReader) ListBranches(ctx context.Context) ([]string, error) {
	if r.useCLI {
		return r.listBranchesGitCLI(ctx)
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// CommitsTouchingPaths returns the subset of commits whose changed files match
// the include patterns (and none of the exclude patterns). An empty include
// list means no commit is selected. A failed file lookup skips that commit
// rather than aborting the scan.
func CommitsTouchingPaths(ctx context.Context, r RepositoryReader, commits CommitSet, include, exclude []string) (CommitSet, error) {
	matched := NewCommitSet()
	if len(include) == 0 {
		return matched, nil
	}

	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid path pattern: %q", pattern)
		}
	}

	for sha := range commits {
		paths, err := r.ListChangedFiles(ctx, sha)
		if err != nil {
			continue
		}
		for _, path := range paths {
			if matchesPatterns(path, include, exclude) {
				matched.Add(sha)
				break
			}
		}
	}
	return matched, nil
}

// matchesPatterns checks a path against include/exclude glob patterns.
func matchesPatterns(path string, include, exclude []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	for _, pattern := range include {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
