package graph

import (
	"sort"

	"github.com/masmgr/gitviz-go/internal/git"
)

// DependencyGraph maps each commit to the set of its direct parents.
// It is built once per invocation and not mutated afterwards. A root commit
// maps to an empty set.
type DependencyGraph struct {
	// Parents holds the commit -> parent-set mapping.
	Parents map[string]git.CommitSet

	// Failed records commits whose parent lookup failed and was degraded to
	// an empty set under the lenient policy. Lets callers tell a true root
	// apart from a failed lookup.
	Failed git.CommitSet
}

// Edge is one parent -> child ancestry relationship.
type Edge struct {
	Parent string
	Child  string
}

// Len returns the number of commits in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.Parents)
}

// Commits returns all commit identifiers in lexicographic order.
func (g *DependencyGraph) Commits() []string {
	ids := make([]string, 0, len(g.Parents))
	for id := range g.Parents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Roots returns the commits with an empty parent set, failed lookups
// excluded.
func (g *DependencyGraph) Roots() []string {
	var roots []string
	for id, parents := range g.Parents {
		if parents.Len() == 0 && !g.Failed.Contains(id) {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// Edges returns every (parent, child) pair, ordered by child then parent.
func (g *DependencyGraph) Edges() []Edge {
	var edges []Edge
	for _, child := range g.Commits() {
		for _, parent := range g.Parents[child].Sorted() {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	}
	return edges
}

// Equal reports order-independent equality of two graphs: same commits, and
// the same parent set per commit.
func (g *DependencyGraph) Equal(other *DependencyGraph) bool {
	if len(g.Parents) != len(other.Parents) {
		return false
	}
	for id, parents := range g.Parents {
		otherParents, ok := other.Parents[id]
		if !ok || !parents.Equal(otherParents) {
			return false
		}
	}
	return g.Failed.Equal(other.Failed)
}
