package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/masmgr/gitviz-go/internal/git"
	"github.com/masmgr/gitviz-go/internal/graph"
)

// DefaultAbbrevLength is the node-label abbreviation used in diagrams.
const DefaultAbbrevLength = 7

// highlightStyle is applied to commits selected by the path filters.
const highlightStyle = "fill:#f9a825,stroke:#333"

// DiagramOptions controls Mermaid serialization.
type DiagramOptions struct {
	Direction    string        // TD, LR, BT or RL
	AbbrevLength int           // node label length, 0 means DefaultAbbrevLength
	Highlights   git.CommitSet // commits to mark with a style line
}

// DefaultDiagramOptions returns the reference diagram settings.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{Direction: "TD", AbbrevLength: DefaultAbbrevLength}
}

// ParseDirection validates a Mermaid flowchart direction name.
func ParseDirection(s string) (string, error) {
	d := strings.ToUpper(strings.TrimSpace(s))
	switch d {
	case "":
		return "TD", nil
	case "TD", "TB", "LR", "BT", "RL":
		return d, nil
	default:
		return "", fmt.Errorf("unknown diagram direction: %q", s)
	}
}

// WriteDiagram serializes the graph as a Mermaid flowchart: a header line,
// then one edge statement per (commit, parent) pair. Edges are sorted so the
// output is deterministic. Commits that take part in no edge are emitted as
// bare nodes so they still appear in the image.
func WriteDiagram(w io.Writer, g *graph.DependencyGraph, opts DiagramOptions) error {
	direction, err := ParseDirection(opts.Direction)
	if err != nil {
		return err
	}
	n := opts.AbbrevLength
	if n <= 0 {
		n = DefaultAbbrevLength
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s\n", direction)

	linked := git.NewCommitSet()
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %s --> %s\n", abbrev(e.Parent, n), abbrev(e.Child, n))
		linked.Add(e.Parent)
		linked.Add(e.Child)
	}

	for _, sha := range g.Commits() {
		if !linked.Contains(sha) {
			fmt.Fprintf(bw, "  %s\n", abbrev(sha, n))
		}
	}

	for _, sha := range opts.Highlights.Sorted() {
		if _, ok := g.Parents[sha]; ok {
			fmt.Fprintf(bw, "  style %s %s\n", abbrev(sha, n), highlightStyle)
		}
	}

	return bw.Flush()
}

// SaveDiagram writes the diagram to path, overwriting any existing file.
func SaveDiagram(path string, g *graph.DependencyGraph, opts DiagramOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDiagram(f, g, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// abbrev shortens a commit identifier for display.
func abbrev(sha string, n int) string {
	if len(sha) <= n {
		return sha
	}
	return sha[:n]
}
