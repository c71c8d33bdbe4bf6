package growth

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-compass/internal/parsing"
	"github.com/jonathan/talent-compass/internal/types"
)

// FindReachable filters candidate jobs to the ones the employee can plausibly
// reach: transition probability is the direct edge weight when one exists,
// otherwise the product of edge weights along the fewest-hops path. Candidates
// below minProbability or estimated above maxYears are dropped. Results are
// sorted by probability * (100-difficulty)/100 descending, ties broken by job
// name for determinism.
func (r *Recommender) FindReachable(employee *types.EmployeeProfile, candidates []types.JobRequirement, maxYears, minProbability float64) []types.ReachableJob {
	current := strings.TrimSpace(employee.CurrentJob)
	pool := parsing.SkillPool(employee)

	reachable := make([]types.ReachableJob, 0, len(candidates))
	for _, candidate := range candidates {
		name := strings.TrimSpace(candidate.Name)
		if name == "" || name == current {
			continue
		}

		probability, direct := r.graph.EdgeWeight(current, name)
		if !direct {
			probability = r.graph.PathProbability(r.graph.ShortestPath(current, name))
		}
		if probability < minProbability {
			continue
		}

		required := r.requiredSkills(name)
		skillGap := 0
		overlap := 0
		for skill := range required {
			if pool[skill] {
				overlap++
			} else {
				skillGap++
			}
		}
		difficulty := r.transitionDifficulty(name, skillGap, overlap, len(required), float64(employee.CareerYears))

		estimatedYears := float64(skillGap)*0.5 + difficulty/20.0
		if estimatedYears > maxYears {
			continue
		}

		reachable = append(reachable, types.ReachableJob{
			JobID:       candidate.JobID,
			JobName:     name,
			Probability: round2(probability),
			Difficulty:  round2(difficulty),
			Years:       round2(estimatedYears),
			Direct:      direct,
		})
	}

	sort.Slice(reachable, func(i, j int) bool {
		si := reachable[i].Probability * (100 - reachable[i].Difficulty) / 100
		sj := reachable[j].Probability * (100 - reachable[j].Difficulty) / 100
		if si != sj {
			return si > sj
		}
		return reachable[i].JobName < reachable[j].JobName
	})
	return reachable
}
