package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// BranchesCmd returns the branches command.
func BranchesCmd() *cli.Command {
	return &cli.Command{
		Name:  "branches",
		Usage: "List local branches of the repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Repository backend (auto, git-cli, go-git)",
			},
		},
		Action: branchesAction,
	}
}

func branchesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	reader, err := newReader(c, cfg)
	if err != nil {
		return err
	}

	branches, err := reader.ListBranches(c.Context)
	if err != nil {
		return err
	}

	for _, name := range branches {
		fmt.Println(name)
	}
	return nil
}
