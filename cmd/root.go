package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/gitviz-go/config"
	"github.com/masmgr/gitviz-go/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitviz",
		Usage:   "Commit ancestry graph visualizer for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			VisualizeCmd(),
			GraphCmd(),
			BranchesCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "repo",
				Value: ".",
				Usage: "path to Git repository (legacy mode)",
			},
			&cli.StringFlag{
				Name:  "branch",
				Usage: "branch to visualize (legacy mode)",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "path of the image file to produce (legacy mode)",
			},
			&cli.StringFlag{
				Name:  "visualizer",
				Usage: "diagram renderer command (legacy mode)",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to visualize (default from config, HEAD)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Repository backend (auto, git-cli, go-git)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns; commits touching matching paths are highlighted",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns excluded from highlighting",
		},
		&cli.BoolFlag{
			Name:  "strict-parents",
			Usage: "Abort when a parent lookup fails instead of degrading to an empty set",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "mermaid", "mmd":
		return output.FormatMermaid
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Git.Backend = backend
	}
	if c.Bool("strict-parents") {
		cfg.Graph.LenientParents = false
	}

	return cfg, nil
}

// legacyAction handles the default command behavior: the original tool's
// flat flag surface (--repo --branch --output [--visualizer]) maps onto the
// visualize command.
func legacyAction(c *cli.Context) error {
	if c.String("output") == "" {
		return cli.ShowAppHelp(c)
	}
	return VisualizeCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
