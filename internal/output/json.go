package output

import (
	"encoding/json"
)

// JSONGraphWriter writes ancestry graph reports as JSON.
type JSONGraphWriter struct{}

type jsonGraphNode struct {
	SHA          string   `json:"sha"`
	Parents      []string `json:"parents"`
	LookupFailed bool     `json:"lookupFailed,omitempty"`
	Highlighted  bool     `json:"highlighted,omitempty"`
}

type jsonGraphReport struct {
	RepoPath    string          `json:"repoPath"`
	Branch      string          `json:"branch"`
	GeneratedAt string          `json:"generatedAt"`
	CommitCount int             `json:"commitCount"`
	EdgeCount   int             `json:"edgeCount"`
	Roots       []string        `json:"roots"`
	Nodes       []jsonGraphNode `json:"nodes"`
}

// Write outputs the graph report as indented JSON.
func (w *JSONGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	g := report.Graph

	doc := jsonGraphReport{
		RepoPath:    report.RepoPath,
		Branch:      report.Branch,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		CommitCount: g.Len(),
		EdgeCount:   len(g.Edges()),
		Roots:       g.Roots(),
		Nodes:       make([]jsonGraphNode, 0, g.Len()),
	}

	for _, sha := range g.Commits() {
		doc.Nodes = append(doc.Nodes, jsonGraphNode{
			SHA:          sha,
			Parents:      g.Parents[sha].Sorted(),
			LookupFailed: g.Failed.Contains(sha),
			Highlighted:  report.Highlights.Contains(sha),
		})
	}

	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
