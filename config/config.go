package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Renderer RendererConfig `json:"renderer"`
	Graph    GraphConfig    `json:"graph"`
	Git      GitConfig      `json:"git"`
	Filters  FilterConfig   `json:"filters"`
}

// RendererConfig holds external renderer settings.
type RendererConfig struct {
	Command string `json:"command"` // Default: "mmdc"
}

// GraphConfig holds diagram and graph-construction settings.
type GraphConfig struct {
	Direction      string `json:"direction"`      // Mermaid flow direction, default "TD"
	AbbrevLength   int    `json:"abbrevLength"`   // Node label length, default 7
	LenientParents bool   `json:"lenientParents"` // Degrade failed parent lookups, default true
}

// GitConfig holds repository access settings.
type GitConfig struct {
	Backend       string `json:"backend"`       // "auto", "git-cli" or "go-git"
	DefaultBranch string `json:"defaultBranch"` // Default: "HEAD"
}

// FilterConfig holds path patterns used to highlight commits.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Renderer: RendererConfig{
			Command: "mmdc",
		},
		Graph: GraphConfig{
			Direction:      "TD",
			AbbrevLength:   7,
			LenientParents: true,
		},
		Git: GitConfig{
			Backend:       "auto",
			DefaultBranch: "HEAD",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitviz.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitviz.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitviz.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
