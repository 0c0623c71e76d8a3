package git

import (
	"strings"
	"testing"
)

func TestCommitSet_Basics(t *testing.T) {
	s := NewCommitSet("b", "a", "b")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", s.Len())
	}
	if !s.Contains("a") || !s.Contains("b") {
		t.Fatalf("set missing members: %v", s)
	}
	if s.Contains("c") {
		t.Fatalf("set should not contain %q", "c")
	}

	sorted := s.Sorted()
	if len(sorted) != 2 || sorted[0] != "a" || sorted[1] != "b" {
		t.Fatalf("Sorted = %v, expected [a b]", sorted)
	}
}

func TestCommitSet_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b CommitSet
		want bool
	}{
		{name: "both empty", a: NewCommitSet(), b: NewCommitSet(), want: true},
		{name: "same members", a: NewCommitSet("x", "y"), b: NewCommitSet("y", "x"), want: true},
		{name: "different size", a: NewCommitSet("x"), b: NewCommitSet("x", "y"), want: false},
		{name: "different members", a: NewCommitSet("x", "z"), b: NewCommitSet("x", "y"), want: false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Fatalf("%s: Equal = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestIsCommitID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "0123456789abcdef0123456789abcdef01234567", want: true},
		{id: "0123456789abcdef0123456789abcdef0123456", want: false},  // too short
		{id: "0123456789abcdef0123456789abcdef012345678", want: false}, // too long
		{id: "0123456789ABCDEF0123456789abcdef01234567", want: false},  // uppercase
		{id: "0123456789abcdefg123456789abcdef01234567", want: false},  // non-hex
		{id: "", want: false},
	}

	for _, tt := range tests {
		if got := IsCommitID(tt.id); got != tt.want {
			t.Fatalf("IsCommitID(%q) = %v, expected %v", tt.id, got, tt.want)
		}
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{in: "", want: BackendAuto},
		{in: "auto", want: BackendAuto},
		{in: "git", want: BackendGitCLI},
		{in: "git-cli", want: BackendGitCLI},
		{in: "go-git", want: BackendGoGit},
		{in: "GoGit", want: BackendGoGit},
		{in: "svn", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseBackend(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseBackend(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseBackend(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestQueryError_Format(t *testing.T) {
	e := &QueryError{Op: "rev-list", Ref: "missing", Detail: "fatal: bad revision", Err: ErrUnknownRef}

	msg := e.Error()
	for _, part := range []string{"rev-list", "missing", "fatal: bad revision"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("error message %q missing %q", msg, part)
		}
	}
	if e.Unwrap() != ErrUnknownRef {
		t.Fatalf("Unwrap = %v, expected ErrUnknownRef", e.Unwrap())
	}
}
