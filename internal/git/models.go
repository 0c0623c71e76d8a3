package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownRef indicates a branch or commit reference could not be resolved.
var ErrUnknownRef = errors.New("unknown reference")

// CommitSet is a set of commit identifiers. Order is irrelevant,
// uniqueness is required.
type CommitSet map[string]struct{}

// NewCommitSet creates a set from the given identifiers.
func NewCommitSet(ids ...string) CommitSet {
	s := make(CommitSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts an identifier into the set.
func (s CommitSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether the identifier is in the set.
func (s CommitSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s CommitSet) Len() int {
	return len(s)
}

// Sorted returns the identifiers in lexicographic order.
func (s CommitSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equal reports order-independent equality of two sets.
func (s CommitSet) Equal(other CommitSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// commitIDLength is the length of a full SHA-1 commit identifier.
const commitIDLength = 40

// IsCommitID reports whether s is a well-formed full commit identifier:
// a fixed-length lowercase hexadecimal string.
func IsCommitID(s string) bool {
	if len(s) != commitIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Backend selects how repository queries are executed.
type Backend int

const (
	// BackendAuto uses the git CLI when available on PATH, go-git otherwise.
	BackendAuto Backend = iota
	// BackendGitCLI shells out to the git executable.
	BackendGitCLI
	// BackendGoGit uses the go-git library binding.
	BackendGoGit
)

// String returns a string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendGitCLI:
		return "git-cli"
	case BackendGoGit:
		return "go-git"
	default:
		return "auto"
	}
}

// ParseBackend parses a backend name as used in config files and flags.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return BackendAuto, nil
	case "git", "cli", "git-cli":
		return BackendGitCLI, nil
	case "go-git", "gogit", "lib":
		return BackendGoGit, nil
	default:
		return BackendAuto, fmt.Errorf("unknown git backend: %q", s)
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Backend  Backend
	Include  []string // Glob patterns marking paths of interest
	Exclude  []string // Glob patterns excluded even when included
}

// QueryError reports a failed repository query. Branch-level query failures
// surface it to abort the whole invocation.
type QueryError struct {
	Op     string // e.g. "rev-list", "resolve-branch"
	Ref    string // branch name or commit identifier queried
	Detail string // underlying tool diagnostic, if any
	Err    error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("git %s %s: %v: %s", e.Op, e.Ref, e.Err, e.Detail)
	}
	return fmt.Sprintf("git %s %s: %v", e.Op, e.Ref, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}
