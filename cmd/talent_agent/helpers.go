package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/config"
	"github.com/jonathan/talent-compass/internal/logger"
	"github.com/jonathan/talent-compass/internal/schemas"
)

// runtime bundles the pieces every subcommand needs: merged config and the
// shared logger.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
}

// newRuntime loads the optional config file, validates it, and builds the
// logger from the root flags.
func newRuntime() (*runtime, error) {
	cfg := &config.Config{}
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(rootLogJSON || cfg.LogJSON, rootDebug || cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &runtime{cfg: cfg, log: log}, nil
}

// orDefault returns the flag value when set, otherwise the config value.
func orDefault(flag, fromConfig string) string {
	if flag != "" {
		return flag
	}
	return fromConfig
}

// validateInput checks an input file against its schema when the schema can
// be resolved. The config's schema_root directory is preferred; otherwise the
// usual relative locations are tried. Data that fails validation is a hard
// error; an unresolvable or broken schema only warns.
func (rt *runtime) validateInput(schemaRelPath, jsonPath string) error {
	schemaPath := ""
	if rt.cfg.SchemaRoot != "" {
		candidate := filepath.Join(rt.cfg.SchemaRoot, filepath.Base(schemaRelPath))
		if _, err := os.Stat(candidate); err == nil {
			schemaPath = candidate
		}
	}
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemaRelPath)
	}
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s does not validate against schema: %w", jsonPath, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", jsonPath, err)
	}
	return nil
}

// report is the envelope every command writes: a generated ID, a timestamp,
// the report kind, and the payload.
type report struct {
	ReportID    string      `json:"report_id"`
	GeneratedAt string      `json:"generated_at"`
	Kind        string      `json:"kind"`
	Payload     interface{} `json:"payload"`
}

// writeReport marshals the payload inside a report envelope and writes it to
// outPath, or to stdout when outPath is empty.
func writeReport(outPath, kind string, payload interface{}) error {
	envelope := report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Kind:        kind,
		Payload:     payload,
	}

	jsonOutput, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s report to JSON: %w", kind, err)
	}

	if outPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write %s report to %s: %w", kind, outPath, err)
	}
	return nil
}
