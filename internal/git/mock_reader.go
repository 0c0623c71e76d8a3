package git

import "context"

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined ancestry data without needing a real
// Git repository.
type MockHistoryReader struct {
	Commits      CommitSet            // returned by ListBranchCommits
	Parents      map[string]CommitSet // per-commit parent sets
	Files        map[string][]string  // per-commit changed paths
	BranchErr    error                // forced ListBranchCommits failure
	ParentErrs   map[string]error     // forced per-commit parent lookup failures
	ParentCalls  int                  // number of ListCommitParents invocations
	WantedBranch string               // when set, other branch names fail
}

// ListBranchCommits returns the predefined commit set or error.
func (m *MockHistoryReader) ListBranchCommits(_ context.Context, branch string) (CommitSet, error) {
	if m.BranchErr != nil {
		return nil, m.BranchErr
	}
	if m.WantedBranch != "" && branch != m.WantedBranch {
		return nil, &QueryError{Op: "resolve-branch", Ref: branch, Err: ErrUnknownRef}
	}
	return m.Commits, nil
}

// ListCommitParents returns the predefined parent set for the commit.
func (m *MockHistoryReader) ListCommitParents(_ context.Context, sha string) (CommitSet, error) {
	m.ParentCalls++
	if err, ok := m.ParentErrs[sha]; ok {
		return nil, err
	}
	if parents, ok := m.Parents[sha]; ok {
		return parents, nil
	}
	return NewCommitSet(), nil
}

// ListChangedFiles returns the predefined paths for the commit.
func (m *MockHistoryReader) ListChangedFiles(_ context.Context, sha string) ([]string, error) {
	if err, ok := m.ParentErrs[sha]; ok {
		return nil, err
	}
	return m.Files[sha], nil
}
