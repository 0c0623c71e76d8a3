package output

import (
	"github.com/masmgr/gitviz-go/internal/render"
)

// MermaidGraphWriter writes the ancestry graph as a Mermaid diagram, the same
// format the visualize pipeline feeds to the external renderer.
type MermaidGraphWriter struct{}

// Write outputs the Mermaid diagram description.
func (w *MermaidGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	opts := options.Diagram
	if opts.Highlights == nil {
		opts.Highlights = report.Highlights
	}
	return render.WriteDiagram(writer, report.Graph, opts)
}
