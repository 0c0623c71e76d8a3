package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/gitviz-go/config"
	"github.com/masmgr/gitviz-go/internal/git"
	"github.com/masmgr/gitviz-go/internal/graph"
	"github.com/masmgr/gitviz-go/internal/output"
	"github.com/masmgr/gitviz-go/internal/render"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across the graph-building commands.
type CommandContext struct {
	Config     *config.Config
	RepoPath   string
	Branch     string
	Reader     *git.HistoryReader
	Graph      *graph.DependencyGraph
	Highlights git.CommitSet
}

// newReader opens a repository reader from CLI flags and configuration.
func newReader(c *cli.Context, cfg *config.Config) (*git.HistoryReader, error) {
	backend, err := git.ParseBackend(cfg.Git.Backend)
	if err != nil {
		return nil, err
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: c.String("repo"),
		Backend:  backend,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return reader, nil
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, repository opening, graph construction
// and highlight resolution.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	reader, err := newReader(c, cfg)
	if err != nil {
		return nil, err
	}

	branch := c.String("branch")
	if branch == "" {
		branch = cfg.Git.DefaultBranch
	}

	builder := graph.NewBuilder(reader, graph.BuildOptions{
		LenientParents: cfg.Graph.LenientParents,
	})
	g, err := builder.Build(c.Context, branch)
	if err != nil {
		return nil, err
	}

	highlights := git.NewCommitSet()
	if len(cfg.Filters.Include) > 0 {
		commits := git.NewCommitSet()
		for sha := range g.Parents {
			commits.Add(sha)
		}
		highlights, err = git.CommitsTouchingPaths(c.Context, reader, commits, cfg.Filters.Include, cfg.Filters.Exclude)
		if err != nil {
			return nil, err
		}
	}

	return &CommandContext{
		Config:     cfg,
		RepoPath:   c.String("repo"),
		Branch:     branch,
		Reader:     reader,
		Graph:      g,
		Highlights: highlights,
	}, nil
}

// DiagramOptions derives Mermaid serialization options from flags and config.
func (ctx *CommandContext) DiagramOptions(c *cli.Context) (render.DiagramOptions, error) {
	direction := c.String("direction")
	if direction == "" {
		direction = ctx.Config.Graph.Direction
	}
	parsed, err := render.ParseDirection(direction)
	if err != nil {
		return render.DiagramOptions{}, err
	}

	return render.DiagramOptions{
		Direction:    parsed,
		AbbrevLength: ctx.Config.Graph.AbbrevLength,
		Highlights:   ctx.Highlights,
	}, nil
}

// Report assembles the output report for the built graph.
func (ctx *CommandContext) Report() *output.GraphReport {
	return &output.GraphReport{
		RepoPath:    ctx.RepoPath,
		Branch:      ctx.Branch,
		GeneratedAt: time.Now(),
		Graph:       ctx.Graph,
		Highlights:  ctx.Highlights,
	}
}
