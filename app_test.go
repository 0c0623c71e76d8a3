package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masmgr/gitviz-go/cmd"
)

func TestApp_VisualizeEndToEnd(t *testing.T) {
	repoDir, branch := createTestRepo(t)
	renderer := writeFakeRenderer(t)
	imagePath := filepath.Join(t.TempDir(), "graph.png")

	app := cmd.App()
	err := app.Run([]string{
		"gitviz", "visualize",
		"--repo", repoDir,
		"--branch", branch,
		"--backend", "go-git",
		"--visualizer", renderer,
		"-o", imagePath,
	})
	if err != nil {
		t.Fatalf("visualize: %v", err)
	}

	img, err := os.ReadFile(imagePath)
	if err != nil {
		t.Fatalf("image not produced: %v", err)
	}
	if len(img) == 0 {
		t.Fatalf("image file is empty")
	}

	mmdPath := strings.TrimSuffix(imagePath, ".png") + ".mmd"
	if _, err := os.Stat(mmdPath); !os.IsNotExist(err) {
		t.Fatalf("intermediate diagram file left behind")
	}
}

func TestApp_LegacyFlagSurface(t *testing.T) {
	repoDir, branch := createTestRepo(t)
	renderer := writeFakeRenderer(t)
	imagePath := filepath.Join(t.TempDir(), "deps.png")

	app := cmd.App()
	err := app.Run([]string{
		"gitviz",
		"--repo", repoDir,
		"--branch", branch,
		"--output", imagePath,
		"--visualizer", renderer,
	})
	if err != nil {
		t.Fatalf("legacy visualize: %v", err)
	}

	if _, err := os.Stat(imagePath); err != nil {
		t.Fatalf("image not produced: %v", err)
	}
}

func TestApp_VisualizeUnknownBranch(t *testing.T) {
	repoDir, _ := createTestRepo(t)
	renderer := writeFakeRenderer(t)
	imagePath := filepath.Join(t.TempDir(), "graph.png")

	app := cmd.App()
	err := app.Run([]string{
		"gitviz", "visualize",
		"--repo", repoDir,
		"--branch", "no-such-branch",
		"--backend", "go-git",
		"--visualizer", renderer,
		"-o", imagePath,
	})
	if err == nil {
		t.Fatalf("expected error for unknown branch")
	}

	if _, statErr := os.Stat(imagePath); !os.IsNotExist(statErr) {
		t.Fatalf("no output file should be produced for a failed build")
	}
}

func TestApp_GraphJSON(t *testing.T) {
	repoDir, branch := createTestRepo(t)
	outPath := filepath.Join(t.TempDir(), "graph.json")

	app := cmd.App()
	err := app.Run([]string{
		"gitviz", "graph",
		"--repo", repoDir,
		"--branch", branch,
		"--backend", "go-git",
		"--format", "json",
		"-o", outPath,
	})
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var doc struct {
		Branch      string `json:"branch"`
		CommitCount int    `json:"commitCount"`
		EdgeCount   int    `json:"edgeCount"`
		Roots       []string
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Branch != branch || doc.CommitCount != 3 || doc.EdgeCount != 2 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestApp_GraphMermaidToStdoutDoesNotError(t *testing.T) {
	repoDir, branch := createTestRepo(t)

	suppressOutput(t, func() {
		app := cmd.App()
		err := app.Run([]string{
			"gitviz", "graph",
			"--repo", repoDir,
			"--branch", branch,
			"--backend", "go-git",
			"--format", "mermaid",
		})
		if err != nil {
			t.Errorf("graph mermaid: %v", err)
		}
	})
}

// suppressOutput temporarily redirects stdout while fn runs.
func suppressOutput(t *testing.T, fn func()) {
	t.Helper()
	oldStdout := os.Stdout
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout
}
