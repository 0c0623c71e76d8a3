package cmd

import (
	"fmt"

	"github.com/masmgr/gitviz-go/internal/render"
	"github.com/urfave/cli/v2"
)

// VisualizeCmd returns the visualize command.
func VisualizeCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "Path of the image file to produce",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "visualizer",
			Usage: "Diagram renderer command (default from config, mmdc)",
		},
		&cli.StringFlag{
			Name:    "direction",
			Aliases: []string{"d"},
			Usage:   "Diagram direction (TD, LR, BT, RL)",
		},
		&cli.BoolFlag{
			Name:  "keep-diagram",
			Usage: "Keep the intermediate Mermaid file next to the image",
		},
	)

	return &cli.Command{
		Name:    "visualize",
		Aliases: []string{"v"},
		Usage:   "Render the commit ancestry of a branch as an image",
		Flags:   flags,
		Action:  visualizeAction,
	}
}

func visualizeAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	diagram, err := ctx.DiagramOptions(c)
	if err != nil {
		return err
	}

	renderer := c.String("visualizer")
	if renderer == "" {
		renderer = ctx.Config.Renderer.Command
	}

	imagePath := c.String("output")
	err = render.Visualize(c.Context, ctx.Graph, imagePath, render.VisualizeOptions{
		Diagram:         diagram,
		RendererCommand: renderer,
		KeepDiagram:     c.Bool("keep-diagram"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Dependency graph written to %s (%d commits)\n", imagePath, ctx.Graph.Len())
	return nil
}
