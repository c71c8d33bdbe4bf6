package growth

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/types"
)

// Priority weights for ranking simulated paths.
const (
	priorityProbabilityWeight = 0.4
	priorityDifficultyWeight  = 0.3
	priorityYearsWeight       = 0.3
	priorityYearsHorizon      = 10.0
)

// RecommendOptions carries the caller-tunable knobs of a recommendation
// batch.
type RecommendOptions struct {
	TopN           int
	MaxYears       float64
	MinProbability float64
	MaxDepth       int
}

// defaults applied when an option is left at its zero value.
const (
	defaultTopN     = 5
	defaultMaxYears = 10.0
	defaultMaxDepth = 3
)

func (o RecommendOptions) withDefaults() RecommendOptions {
	if o.TopN <= 0 {
		o.TopN = defaultTopN
	}
	if o.MaxYears <= 0 {
		o.MaxYears = defaultMaxYears
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}
	return o
}

// Recommend composes the full pipeline: build a graph from the history,
// filter candidates by reachability, simulate a staged path to each survivor,
// attach reverse-path alternatives, and rank by priority.
func Recommend(employee *types.EmployeeProfile, candidates []types.JobRequirement, history map[string][]string, opts RecommendOptions, logger *zap.Logger) []types.PathRecommendation {
	opts = opts.withDefaults()

	graph := BuildGraph(history)
	recommender := NewRecommender(graph, candidates, logger)
	return recommender.Recommend(employee, candidates, opts)
}

// Recommend runs reachability, simulation, and ranking over a prebuilt
// recommender.
func (r *Recommender) Recommend(employee *types.EmployeeProfile, candidates []types.JobRequirement, opts RecommendOptions) []types.PathRecommendation {
	opts = opts.withDefaults()

	reachable := r.FindReachable(employee, candidates, opts.MaxYears, opts.MinProbability)

	recommendations := make([]types.PathRecommendation, 0, len(reachable))
	for _, target := range reachable {
		path := r.SimulatePath(employee, target.JobName, nil)
		recommendations = append(recommendations, types.PathRecommendation{
			Path:         path,
			Priority:     pathPriority(target.Probability, path),
			Alternatives: r.FindReversePaths(target.JobName, opts.MaxDepth),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority > recommendations[j].Priority
	})

	if len(recommendations) > opts.TopN {
		recommendations = recommendations[:opts.TopN]
	}
	return recommendations
}

// pathPriority blends transition probability, inverted difficulty, and how
// quickly the path completes within a 10-year horizon.
func pathPriority(probability float64, path *types.GrowthPath) float64 {
	yearsScore := (priorityYearsHorizon - math.Min(priorityYearsHorizon, path.TotalYears)) / priorityYearsHorizon
	priority := probability*priorityProbabilityWeight +
		(100-path.DifficultyScore)/100*priorityDifficultyWeight +
		yearsScore*priorityYearsWeight
	return round2(priority)
}
