package git

import (
	"context"
	"os/exec"
	"strings"
)

// runGit executes a git subcommand against the reader's repository and
// returns its combined output.
func (r *HistoryReader) runGit(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", r.opts.RepoPath}, args...)
	out, err := exec.CommandContext(ctx, "git", full...).CombinedOutput()
	return string(out), err
}

func (r *HistoryReader) listBranchCommitsGitCLI(ctx context.Context, branch string) (CommitSet, error) {
	out, err := r.runGit(ctx, "rev-list", branch, "--")
	if err != nil {
		return nil, &QueryError{Op: "rev-list", Ref: branch, Detail: strings.TrimSpace(out), Err: err}
	}
	return splitLinesToSet(out), nil
}

func (r *HistoryReader) listCommitParentsGitCLI(ctx context.Context, sha string) (CommitSet, error) {
	out, err := r.runGit(ctx, "log", "-n", "1", "--pretty=%P", sha)
	if err != nil {
		return nil, &QueryError{Op: "show-parents", Ref: sha, Detail: strings.TrimSpace(out), Err: err}
	}
	return splitFieldsToSet(out), nil
}

func (r *HistoryReader) listChangedFilesGitCLI(ctx context.Context, sha string) ([]string, error) {
	out, err := r.runGit(ctx, "show", "--name-only", "--pretty=format:", sha)
	if err != nil {
		return nil, &QueryError{Op: "show-files", Ref: sha, Detail: strings.TrimSpace(out), Err: err}
	}
	return splitLines(out), nil
}

func (r *HistoryReader) listBranchesGitCLI(ctx context.Context) ([]string, error) {
	out, err := r.runGit(ctx, "for-each-ref", "refs/heads", "--format=%(refname:short)")
	if err != nil {
		return nil, &QueryError{Op: "for-each-ref", Ref: "refs/heads", Detail: strings.TrimSpace(out), Err: err}
	}
	return splitLines(out), nil
}

// splitLines splits line-oriented command output, dropping empty lines.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitLinesToSet returns the non-empty lines of command output as a set.
func splitLinesToSet(out string) CommitSet {
	set := NewCommitSet()
	for _, line := range splitLines(out) {
		set.Add(line)
	}
	return set
}

// splitFieldsToSet returns the whitespace-separated tokens of command output
// as a set. Empty output (a root commit's parent list) yields an empty set.
func splitFieldsToSet(out string) CommitSet {
	set := NewCommitSet()
	for _, tok := range strings.Fields(out) {
		set.Add(tok)
	}
	return set
}
