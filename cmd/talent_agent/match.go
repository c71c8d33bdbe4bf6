package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-compass/internal/matching"
	"github.com/jonathan/talent-compass/internal/observability"
	"github.com/jonathan/talent-compass/internal/schemas"
	"github.com/jonathan/talent-compass/internal/store"
	"github.com/jonathan/talent-compass/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score an employee against job requirements",
	Long:  "Computes fitness scores between an employee profile and job requirements, reporting per-tier skill similarity, qualification fit, gaps, and recommendations.",
	RunE:  runMatch,
}

var (
	matchJobsFile      string
	matchEmployeeFile  string
	matchEmployeesFile string
	matchJobID         string
	matchTopN          int
	matchMinScore      float64
	matchOutput        string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobsFile, "jobs", "j", "", "Path to job catalog JSON file")
	matchCmd.Flags().StringVarP(&matchEmployeeFile, "employee", "e", "", "Path to employee profile JSON file")
	matchCmd.Flags().StringVar(&matchEmployeesFile, "employees", "", "Path to employee list JSON file (batch mode)")
	matchCmd.Flags().StringVar(&matchJobID, "job", "", "Job ID or name to match against (default: all jobs)")
	matchCmd.Flags().IntVar(&matchTopN, "top", 0, "Limit results to the top N jobs")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", 0, "Drop results scoring below this value")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(matchCmd)
}

// employeeMatches pairs one employee with their ranked match results.
type employeeMatches struct {
	EmployeeID string              `json:"employee_id"`
	Results    []types.MatchResult `json:"results"`
}

func runMatch(_ *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	jobsFile := orDefault(matchJobsFile, rt.cfg.Jobs)
	if jobsFile == "" {
		return fmt.Errorf("job catalog is required (use --jobs or the config file)")
	}
	if matchEmployeeFile == "" && matchEmployeesFile == "" {
		return fmt.Errorf("an employee profile is required (use --employee or --employees)")
	}
	if matchEmployeeFile != "" && matchEmployeesFile != "" {
		return fmt.Errorf("cannot use --employee with --employees")
	}

	if err := rt.validateInput(schemas.JobCatalogSchema, jobsFile); err != nil {
		return err
	}
	jobs, err := store.LoadJobs(jobsFile)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	topN := matchTopN
	if topN == 0 {
		topN = rt.cfg.TopN
	}
	minScore := matchMinScore
	if minScore == 0 {
		minScore = rt.cfg.MinScore
	}

	matchOne := func(employee *types.EmployeeProfile) ([]types.MatchResult, error) {
		if matchJobID != "" {
			job, err := store.FindJob(jobs, matchJobID)
			if err != nil {
				return nil, err
			}
			return []types.MatchResult{*matching.Match(job, employee)}, nil
		}
		return matching.MatchMany(jobs, employee, topN, minScore), nil
	}

	// Batch mode: employees are independent, so match them concurrently.
	if matchEmployeesFile != "" {
		if err := rt.validateInput(schemas.EmployeeListSchema, matchEmployeesFile); err != nil {
			return err
		}
		employees, err := store.LoadEmployees(matchEmployeesFile)
		if err != nil {
			return fmt.Errorf("failed to load employee list: %w", err)
		}

		batch := make([]employeeMatches, len(employees))
		group, _ := errgroup.WithContext(context.Background())
		for i := range employees {
			i := i
			group.Go(func() error {
				results, err := matchOne(&employees[i])
				if err != nil {
					return err
				}
				batch[i] = employeeMatches{EmployeeID: employees[i].EmployeeID, Results: results}
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}

		rt.log.Info("batch matching complete",
			zap.Int("employees", len(employees)),
			zap.Int("jobs_considered", len(jobs)))

		return writeReport(matchOutput, "match_batch", batch)
	}

	if err := rt.validateInput(schemas.EmployeeSchema, matchEmployeeFile); err != nil {
		return err
	}
	employee, err := store.LoadEmployee(matchEmployeeFile)
	if err != nil {
		return fmt.Errorf("failed to load employee profile: %w", err)
	}

	results, err := matchOne(employee)
	if err != nil {
		return err
	}

	rt.log.Info("matching complete",
		zap.String("employee_id", employee.EmployeeID),
		zap.Int("jobs_considered", len(jobs)),
		zap.Int("results", len(results)))

	if rootVerbose || rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range results {
			printer.PrintMatchResult(&results[i])
		}
	}

	return writeReport(matchOutput, "match", results)
}
