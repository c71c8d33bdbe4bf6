package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/growth"
	"github.com/jonathan/talent-compass/internal/observability"
	"github.com/jonathan/talent-compass/internal/schemas"
	"github.com/jonathan/talent-compass/internal/store"
)

var growthCmd = &cobra.Command{
	Use:   "growth-path",
	Short: "Simulate career growth paths over observed transitions",
	Long:  "Builds a transition graph from historical job sequences and simulates stage-by-stage growth paths for an employee, with difficulty, expected years, and success probability per path.",
	RunE:  runGrowthPath,
}

var (
	growthJobsFile     string
	growthHistoryFile  string
	growthEmployeeFile string
	growthTarget       string
	growthReverseFrom  string
	growthTopN         int
	growthMaxYears     float64
	growthMinProb      float64
	growthMaxDepth     int
	growthOutput       string
)

func init() {
	growthCmd.Flags().StringVarP(&growthJobsFile, "jobs", "j", "", "Path to job catalog JSON file")
	growthCmd.Flags().StringVar(&growthHistoryFile, "history", "", "Path to transition history JSON file")
	growthCmd.Flags().StringVarP(&growthEmployeeFile, "employee", "e", "", "Path to employee profile JSON file (required)")
	growthCmd.Flags().StringVar(&growthTarget, "target", "", "Target job name to simulate a path to (default: recommend top paths)")
	growthCmd.Flags().StringVar(&growthReverseFrom, "reverse-from", "", "List historical paths that led into this job instead of simulating forward")
	growthCmd.Flags().IntVar(&growthTopN, "top", 0, "Limit recommendations to the top N paths")
	growthCmd.Flags().Float64Var(&growthMaxYears, "max-years", 0, "Drop targets estimated beyond this horizon")
	growthCmd.Flags().Float64Var(&growthMinProb, "min-probability", 0, "Drop targets below this success probability")
	growthCmd.Flags().IntVar(&growthMaxDepth, "max-depth", 0, "Reverse traversal depth bound")
	growthCmd.Flags().StringVarP(&growthOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := growthCmd.MarkFlagRequired("employee"); err != nil {
		panic(fmt.Sprintf("failed to mark employee flag as required: %v", err))
	}

	rootCmd.AddCommand(growthCmd)
}

func runGrowthPath(_ *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	jobsFile := orDefault(growthJobsFile, rt.cfg.Jobs)
	historyFile := orDefault(growthHistoryFile, rt.cfg.History)
	if jobsFile == "" {
		return fmt.Errorf("job catalog is required (use --jobs or the config file)")
	}
	if historyFile == "" {
		return fmt.Errorf("transition history is required (use --history or the config file)")
	}

	if err := rt.validateInput(schemas.JobCatalogSchema, jobsFile); err != nil {
		return err
	}
	jobs, err := store.LoadJobs(jobsFile)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	if err := rt.validateInput(schemas.TransitionHistorySchema, historyFile); err != nil {
		return err
	}
	history, err := store.LoadTransitionHistory(historyFile)
	if err != nil {
		return fmt.Errorf("failed to load transition history: %w", err)
	}

	if err := rt.validateInput(schemas.EmployeeSchema, growthEmployeeFile); err != nil {
		return err
	}
	employee, err := store.LoadEmployee(growthEmployeeFile)
	if err != nil {
		return fmt.Errorf("failed to load employee profile: %w", err)
	}

	graph := growth.BuildGraphFromSequences(history)
	recommender := growth.NewRecommender(graph, jobs, rt.log)

	rt.log.Info("transition graph built",
		zap.Int("nodes", len(graph.Nodes())),
		zap.Int("sequences", len(history)))

	// Reverse mode: explain how people historically arrived at a job.
	if growthReverseFrom != "" {
		maxDepth := growthMaxDepth
		if maxDepth == 0 {
			maxDepth = rt.cfg.MaxDepth
		}
		if maxDepth == 0 {
			maxDepth = 3
		}
		paths := recommender.FindReversePaths(growthReverseFrom, maxDepth)
		return writeReport(growthOutput, "reverse_paths", paths)
	}

	// Targeted mode: simulate one path.
	if growthTarget != "" {
		path := recommender.SimulatePath(employee, growthTarget, nil)
		if rootVerbose || rt.cfg.Verbose {
			observability.NewPrinter(os.Stdout).PrintGrowthPath(path)
		}
		return writeReport(growthOutput, "growth_path", path)
	}

	// Recommendation mode: rank reachable targets.
	opts := growth.RecommendOptions{
		TopN:           growthTopN,
		MaxYears:       growthMaxYears,
		MinProbability: growthMinProb,
		MaxDepth:       growthMaxDepth,
	}
	if opts.TopN == 0 {
		opts.TopN = rt.cfg.TopN
	}
	if opts.MaxYears == 0 {
		opts.MaxYears = rt.cfg.MaxYears
	}
	if opts.MinProbability == 0 {
		opts.MinProbability = rt.cfg.MinProbability
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = rt.cfg.MaxDepth
	}

	recommendations := recommender.Recommend(employee, jobs, opts)

	rt.log.Info("growth recommendation complete",
		zap.String("employee_id", employee.EmployeeID),
		zap.Int("paths", len(recommendations)))

	if rootVerbose || rt.cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, recommendation := range recommendations {
			printer.PrintGrowthPath(recommendation.Path)
		}
	}

	return writeReport(growthOutput, "growth_recommendations", recommendations)
}
