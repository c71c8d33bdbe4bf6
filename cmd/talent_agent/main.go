// Package main provides the entry point for the talent compass CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_agent",
	Short: "Talent matching and career-growth recommendation engine",
	Long:  "Talent Compass scores employee profiles against job requirements, adjusts scores by evaluation grades, simulates career growth paths over observed transitions, and evaluates leader readiness.",
}

var (
	rootConfigPath string
	rootVerbose    bool
	rootLogJSON    bool
	rootDebug      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print formatted result summaries")
	rootCmd.PersistentFlags().BoolVar(&rootLogJSON, "log-json", false, "Emit structured JSON logs")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
