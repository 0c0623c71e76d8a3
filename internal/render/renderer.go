package render

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultRendererCommand is the conventional Mermaid CLI renderer.
const DefaultRendererCommand = "mmdc"

// RenderError reports a failed invocation of the external diagram renderer.
type RenderError struct {
	Command string
	Output  string // combined stdout/stderr of the renderer, if any
	Err     error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("renderer %s: %v: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("renderer %s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer invokes an external diagram-rendering program that accepts
// input-path and output-path flags (mmdc convention).
type Renderer struct {
	Command string
}

// NewRenderer creates a renderer for the given command, falling back to
// DefaultRendererCommand when empty.
func NewRenderer(command string) *Renderer {
	if command == "" {
		command = DefaultRendererCommand
	}
	return &Renderer{Command: command}
}

// Render converts the diagram file into an image file. A non-zero exit of the
// external program is surfaced as a RenderError carrying its diagnostic.
func (r *Renderer) Render(ctx context.Context, diagramPath, imagePath string) error {
	out, err := exec.CommandContext(ctx, r.Command, "-i", diagramPath, "-o", imagePath).CombinedOutput()
	if err != nil {
		return &RenderError{Command: r.Command, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}
