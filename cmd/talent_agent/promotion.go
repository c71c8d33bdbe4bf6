package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/evaluation"
	"github.com/jonathan/talent-compass/internal/schemas"
	"github.com/jonathan/talent-compass/internal/store"
)

var promotionCmd = &cobra.Command{
	Use:   "promotion-readiness",
	Short: "Analyze promotion readiness toward a target job",
	Long:  "Runs the evaluation-adjusted match at full weight and classifies each evaluation axis into strengths and improvement areas, producing an explainable is-ready verdict.",
	RunE:  runPromotionReadiness,
}

var (
	promotionJobsFile     string
	promotionEmployeeFile string
	promotionJobID        string
	promotionMinGrade     string
	promotionOutput       string
)

func init() {
	promotionCmd.Flags().StringVarP(&promotionJobsFile, "jobs", "j", "", "Path to job catalog JSON file")
	promotionCmd.Flags().StringVarP(&promotionEmployeeFile, "employee", "e", "", "Path to employee profile JSON file (required)")
	promotionCmd.Flags().StringVar(&promotionJobID, "job", "", "Target job ID or name (required)")
	promotionCmd.Flags().StringVar(&promotionMinGrade, "min-grade", "", "Minimum overall grade counted as a strength (default B+)")
	promotionCmd.Flags().StringVarP(&promotionOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := promotionCmd.MarkFlagRequired("employee"); err != nil {
		panic(fmt.Sprintf("failed to mark employee flag as required: %v", err))
	}
	if err := promotionCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(promotionCmd)
}

func runPromotionReadiness(_ *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	jobsFile := orDefault(promotionJobsFile, rt.cfg.Jobs)
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

	job, err := store.FindJob(jobs, promotionJobID)
	if err != nil {
		return err
	}

	if err := rt.validateInput(schemas.EmployeeSchema, promotionEmployeeFile); err != nil {
		return err
	}
	employee, err := store.LoadEmployee(promotionEmployeeFile)
	if err != nil {
		return fmt.Errorf("failed to load employee profile: %w", err)
	}

	adjuster := evaluation.NewAdjuster(rt.log)
	analysis := adjuster.AnalyzePromotionReadiness(employee, job, promotionMinGrade)

	rt.log.Info("promotion readiness analyzed",
		zap.String("employee_id", employee.EmployeeID),
		zap.String("target_job_id", job.JobID),
		zap.Bool("is_ready", analysis.IsReady))

	return writeReport(promotionOutput, "promotion_readiness", analysis)
}
