package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-compass/internal/leadership"
	"github.com/jonathan/talent-compass/internal/observability"
	"github.com/jonathan/talent-compass/internal/schemas"
	"github.com/jonathan/talent-compass/internal/store"
	"github.com/jonathan/talent-compass/internal/types"
)

var leadersCmd = &cobra.Command{
	Use:   "recommend-leaders",
	Short: "Recommend qualified leader candidates for target roles",
	Long:  "Evaluates every employee against a target leadership role across four factors (evaluation, level, skills, experience) and returns the qualified candidates ranked by readiness score. Without --job, all catalog roles are evaluated concurrently.",
	RunE:  runRecommendLeaders,
}

var (
	leadersJobsFile      string
	leadersEmployeesFile string
	leadersJobID         string
	leadersMinGrade      string
	leadersMinLevel      string
	leadersPeriod        string
	leadersTopN          int
	leadersExcludeLow    bool
	leadersOutput        string
)

func init() {
	leadersCmd.Flags().StringVarP(&leadersJobsFile, "jobs", "j", "", "Path to job catalog JSON file")
	leadersCmd.Flags().StringVarP(&leadersEmployeesFile, "employees", "e", "", "Path to employee list JSON file")
	leadersCmd.Flags().StringVar(&leadersJobID, "job", "", "Target job ID or name (default: all catalog roles)")
	leadersCmd.Flags().StringVar(&leadersMinGrade, "min-grade", "", "Override the role's required evaluation grade (e.g. A)")
	leadersCmd.Flags().StringVar(&leadersMinLevel, "min-level", "", "Override the role's required growth level (e.g. Lv.4)")
	leadersCmd.Flags().StringVar(&leadersPeriod, "period", "recent2", "Evaluation window: latest, recent2, or recent4")
	leadersCmd.Flags().IntVar(&leadersTopN, "top", 0, "Limit results to the top N candidates per role")
	leadersCmd.Flags().BoolVar(&leadersExcludeLow, "exclude-low-performers", false, "Drop employees whose latest overall grade is C or D before evaluation")
	leadersCmd.Flags().StringVarP(&leadersOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(leadersCmd)
}

// roleCandidates pairs one target role with its ranked candidate list.
type roleCandidates struct {
	JobID      string                  `json:"job_id"`
	JobName    string                  `json:"job_name"`
	Candidates []types.LeaderCandidate `json:"candidates"`
}

func runRecommendLeaders(_ *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	jobsFile := orDefault(leadersJobsFile, rt.cfg.Jobs)
	employeesFile := orDefault(leadersEmployeesFile, rt.cfg.Employees)
	if jobsFile == "" {
		return fmt.Errorf("job catalog is required (use --jobs or the config file)")
	}
	if employeesFile == "" {
		return fmt.Errorf("employee list is required (use --employees or the config file)")
	}

	if err := rt.validateInput(schemas.JobCatalogSchema, jobsFile); err != nil {
		return err
	}
	jobs, err := store.LoadJobs(jobsFile)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	if err := rt.validateInput(schemas.EmployeeListSchema, employeesFile); err != nil {
		return err
	}
	employees, err := store.LoadEmployees(employeesFile)
	if err != nil {
		return fmt.Errorf("failed to load employee list: %w", err)
	}

	opts := leadership.CandidateOptions{
		MinGrade:             leadersMinGrade,
		MinLevel:             leadersMinLevel,
		TopN:                 leadersTopN,
		ExcludeLowPerformers: leadersExcludeLow || rt.cfg.ExcludeLowPerformers,
		Period:               leadership.EvaluationPeriod(leadersPeriod),
	}
	if opts.TopN == 0 {
		opts.TopN = rt.cfg.TopN
	}

	evaluator := leadership.NewEvaluator(rt.log)

	var targets []types.JobRequirement
	if leadersJobID != "" {
		job, err := store.FindJob(jobs, leadersJobID)
		if err != nil {
			return err
		}
		targets = []types.JobRequirement{*job}
	} else {
		targets = jobs
	}

	// Roles are independent, so evaluate them concurrently.
	results := make([]roleCandidates, len(targets))
	group, _ := errgroup.WithContext(context.Background())
	for i := range targets {
		i := i
		group.Go(func() error {
			job := &targets[i]
			results[i] = roleCandidates{
				JobID:      job.JobID,
				JobName:    job.Name,
				Candidates: evaluator.RecommendCandidates(job, employees, opts),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	total := 0
	for _, role := range results {
		total += len(role.Candidates)
	}
	rt.log.Info("leader recommendation complete",
		zap.Int("roles", len(results)),
		zap.Int("employees_considered", len(employees)),
		zap.Int("qualified_candidates", total))

	if rootVerbose || rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, role := range results {
			printer.PrintCandidates(role.Candidates)
		}
	}

	return writeReport(leadersOutput, "leader_candidates", results)
}
