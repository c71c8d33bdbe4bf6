// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Input paths
	Jobs       string `json:"jobs,omitempty"`        // Path to job catalog JSON
	Employees  string `json:"employees,omitempty"`   // Path to employee list JSON
	History    string `json:"history,omitempty"`     // Path to transition history JSON
	SchemaRoot string `json:"schema_root,omitempty"` // Directory holding *.schema.json files

	// Engine knobs
	EvaluationWeight     float64 `json:"evaluation_weight,omitempty"`      // 0.0-1.0
	ExcludeLowPerformers bool    `json:"exclude_low_performers,omitempty"` // gate C/D performers
	MinScore             float64 `json:"min_score,omitempty"`              // match result floor, 0-100
	MinProbability       float64 `json:"min_probability,omitempty"`        // reachability floor, 0-1
	MaxYears             float64 `json:"max_years,omitempty"`              // growth-path horizon
	MaxDepth             int     `json:"max_depth,omitempty"`              // reverse traversal depth
	TopN                 int     `json:"top_n,omitempty"`                  // result list cap

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print formatted result summaries
	LogJSON bool `json:"log_json,omitempty"`
	Debug   bool `json:"debug,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks numeric ranges and referenced files. Required-field
// enforcement happens at CLI flag level after merging.
func (c *Config) Validate() error {
	if c.EvaluationWeight < 0 || c.EvaluationWeight > 1 {
		return fmt.Errorf("config error: 'evaluation_weight' must be within [0, 1]")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be within [0, 100]")
	}
	if c.MinProbability < 0 || c.MinProbability > 1 {
		return fmt.Errorf("config error: 'min_probability' must be within [0, 1]")
	}
	if c.MaxYears < 0 {
		return fmt.Errorf("config error: 'max_years' must be non-negative")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config error: 'max_depth' must be non-negative")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	for _, ref := range []struct{ name, path string }{
		{"jobs", c.Jobs},
		{"employees", c.Employees},
		{"history", c.History},
	} {
		if ref.path == "" {
			continue
		}
		if _, err := os.Stat(ref.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", ref.name, ref.path)
		}
	}
	return nil
}
