package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/masmgr/gitviz-go/internal/graph"
)

// VisualizeOptions configures the write-then-render pipeline.
type VisualizeOptions struct {
	Diagram         DiagramOptions
	RendererCommand string
	KeepDiagram     bool // retain the intermediate diagram file
}

// DiagramPathFor derives the intermediate diagram path from the image path by
// replacing its extension with .mmd.
func DiagramPathFor(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".mmd"
}

// Visualize writes the graph as a Mermaid diagram next to imagePath and
// invokes the external renderer to produce the image. The intermediate
// diagram file is removed on all paths unless KeepDiagram is set.
func Visualize(ctx context.Context, g *graph.DependencyGraph, imagePath string, opts VisualizeOptions) error {
	diagramPath := DiagramPathFor(imagePath)

	if err := SaveDiagram(diagramPath, g, opts.Diagram); err != nil {
		return err
	}
	if !opts.KeepDiagram {
		defer os.Remove(diagramPath)
	}

	return NewRenderer(opts.RendererCommand).Render(ctx, diagramPath, imagePath)
}
