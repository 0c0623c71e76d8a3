package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/masmgr/gitviz-go/internal/render"
)

// ConsoleGraphWriter writes ancestry graph reports to the console.
type ConsoleGraphWriter struct{}

// Write outputs the graph report to the console.
func (w *ConsoleGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	g := report.Graph

	color.Green("Commit Ancestry Graph")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Branch: %s\n", report.Branch)
	fmt.Printf("Generated: %s\n", report.GeneratedAt.Format(reportDateTimeLayout))
	fmt.Printf("Commits: %d  Edges: %d  Roots: %d\n\n", g.Len(), len(g.Edges()), len(g.Roots()))

	n := options.Diagram.AbbrevLength
	if n <= 0 {
		n = render.DefaultAbbrevLength
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCommit\tParents\tNotes")

	for i, sha := range g.Commits() {
		parents := g.Parents[sha].Sorted()
		for j := range parents {
			parents[j] = shortID(parents[j], n)
		}
		parentCol := strings.Join(parents, " ")
		if parentCol == "" {
			parentCol = "-"
		}

		var notes []string
		if g.Failed.Contains(sha) {
			notes = append(notes, "lookup failed")
		}
		if report.Highlights.Contains(sha) {
			notes = append(notes, "matches filters")
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, shortID(sha, n), parentCol, strings.Join(notes, ", "))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if g.Failed.Len() > 0 {
		fmt.Println()
		color.Yellow("Warning: parent lookup failed for %d commit(s); they are shown without parents.", g.Failed.Len())
	}

	return nil
}

// shortID shortens a commit identifier for display.
func shortID(sha string, n int) string {
	if len(sha) <= n {
		return sha
	}
	return sha[:n]
}
