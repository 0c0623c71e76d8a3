package cmd

import (
	"github.com/masmgr/gitviz-go/internal/output"
	"github.com/urfave/cli/v2"
)

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, mermaid)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "direction",
			Aliases: []string{"d"},
			Usage:   "Diagram direction for mermaid output (TD, LR, BT, RL)",
		},
	)

	return &cli.Command{
		Name:    "graph",
		Aliases: []string{"g"},
		Usage:   "Print the commit ancestry graph of a branch",
		Flags:   flags,
		Action:  graphAction,
	}
}

func graphAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	diagram, err := ctx.DiagramOptions(c)
	if err != nil {
		return err
	}

	opts := output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
		Diagram:    diagram,
	}

	writer := output.NewGraphReportWriter(opts.Format)
	return writer.Write(ctx.Report(), opts)
}
