package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/evaluation"
	"github.com/jonathan/talent-compass/internal/observability"
	"github.com/jonathan/talent-compass/internal/schemas"
	"github.com/jonathan/talent-compass/internal/store"
	"github.com/jonathan/talent-compass/internal/types"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Match with evaluation-grade score adjustment",
	Long:  "Computes fitness scores and adjusts them by the employee's recent evaluation record across four axes (professionalism, contribution, impact scope, overall grade), with optional low-performer gating.",
	RunE:  runAdjust,
}

var (
	adjustJobsFile     string
	adjustEmployeeFile string
	adjustJobID        string
	adjustWeight       float64
	adjustExcludeLow   bool
	adjustTopN         int
	adjustMinScore     float64
	adjustOutput       string
)

func init() {
	adjustCmd.Flags().StringVarP(&adjustJobsFile, "jobs", "j", "", "Path to job catalog JSON file")
	adjustCmd.Flags().StringVarP(&adjustEmployeeFile, "employee", "e", "", "Path to employee profile JSON file (required)")
	adjustCmd.Flags().StringVar(&adjustJobID, "job", "", "Job ID or name to match against (default: all jobs)")
	adjustCmd.Flags().Float64Var(&adjustWeight, "evaluation-weight", 1.0, "Scale applied to the evaluation bonus (0.0-1.0)")
	adjustCmd.Flags().BoolVar(&adjustExcludeLow, "exclude-low-performers", false, "Zero out scores for C/D overall grades and bottom contribution bands")
	adjustCmd.Flags().IntVar(&adjustTopN, "top", 0, "Limit results to the top N jobs")
	adjustCmd.Flags().Float64Var(&adjustMinScore, "min-score", 0, "Drop results scoring below this value")
	adjustCmd.Flags().StringVarP(&adjustOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := adjustCmd.MarkFlagRequired("employee"); err != nil {
		panic(fmt.Sprintf("failed to mark employee flag as required: %v", err))
	}

	rootCmd.AddCommand(adjustCmd)
}

func runAdjust(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	jobsFile := orDefault(adjustJobsFile, rt.cfg.Jobs)
	if jobsFile == "" {
		return fmt.Errorf("job catalog is required (use --jobs or the config file)")
	}

	if err := rt.validateInput(schemas.JobCatalogSchema, jobsFile); err != nil {
		return err
	}
	jobs, err := store.LoadJobs(jobsFile)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	if err := rt.validateInput(schemas.EmployeeSchema, adjustEmployeeFile); err != nil {
		return err
	}
	employee, err := store.LoadEmployee(adjustEmployeeFile)
	if err != nil {
		return fmt.Errorf("failed to load employee profile: %w", err)
	}

	opts := evaluation.Options{
		ExcludeLowPerformers: adjustExcludeLow || rt.cfg.ExcludeLowPerformers,
		EvaluationWeight:     adjustWeight,
	}
	if !cmd.Flags().Changed("evaluation-weight") && rt.cfg.EvaluationWeight > 0 {
		opts.EvaluationWeight = rt.cfg.EvaluationWeight
	}

	adjuster := evaluation.NewAdjuster(rt.log)

	var results []types.AdjustedResult
	if adjustJobID != "" {
		job, err := store.FindJob(jobs, adjustJobID)
		if err != nil {
			return err
		}
		results = []types.AdjustedResult{*adjuster.Adjust(job, employee, opts)}
	} else {
		topN := adjustTopN
		if topN == 0 {
			topN = rt.cfg.TopN
		}
		minScore := adjustMinScore
		if minScore == 0 {
			minScore = rt.cfg.MinScore
		}
		results = adjuster.AdjustMany(jobs, employee, opts, topN, minScore)
	}

	rt.log.Info("adjustment complete",
		zap.String("employee_id", employee.EmployeeID),
		zap.Float64("evaluation_weight", opts.EvaluationWeight),
		zap.Bool("exclude_low_performers", opts.ExcludeLowPerformers),
		zap.Int("results", len(results)))

	if rootVerbose || rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range results {
			printer.PrintAdjustedResult(&results[i])
		}
	}

	return writeReport(adjustOutput, "adjusted_match", results)
}
