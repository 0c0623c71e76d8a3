package output

import (
	"time"

	"github.com/masmgr/gitviz-go/internal/git"
	"github.com/masmgr/gitviz-go/internal/graph"
	"github.com/masmgr/gitviz-go/internal/render"
)

// Compile-time interface conformance checks.
var (
	_ GraphReportWriter = (*ConsoleGraphWriter)(nil)
	_ GraphReportWriter = (*JSONGraphWriter)(nil)
	_ GraphReportWriter = (*MermaidGraphWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatMermaid OutputFormat = "mermaid"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	Diagram    render.DiagramOptions
}

// GraphReport holds the results of an ancestry graph build.
type GraphReport struct {
	RepoPath    string
	Branch      string
	GeneratedAt time.Time
	Graph       *graph.DependencyGraph
	Highlights  git.CommitSet
}

// GraphReportWriter writes ancestry graph reports.
type GraphReportWriter interface {
	Write(report *GraphReport, options OutputOptions) error
}

// NewGraphReportWriter creates a report writer for the specified format.
func NewGraphReportWriter(format OutputFormat) GraphReportWriter {
	switch format {
	case FormatJSON:
		return &JSONGraphWriter{}
	case FormatMermaid:
		return &MermaidGraphWriter{}
	default:
		return &ConsoleGraphWriter{}
	}
}
