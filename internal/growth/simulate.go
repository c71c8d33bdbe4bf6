package growth

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/parsing"
	"github.com/jonathan/talent-compass/internal/types"
)

const (
	// Difficulty formula: 10 points per missing skill, 5 per year of
	// experience shortfall, 20-point penalty when fewer than 2 required
	// skills overlap, capped at 100.
	difficultyPerMissingSkill = 10.0
	difficultyPerShortYear    = 5.0
	lowOverlapPenalty         = 20.0
	maxDifficulty             = 100.0

	// Achievability gates per stage.
	achievableDifficultyBar = 80.0
	achievableSkillGapBar   = 10

	// Success probability is floored and ceilinged so a path is never
	// reported as impossible or certain.
	minSuccessProbability = 0.1
	maxSuccessProbability = 0.9

	// Historical precedent saturates its probability boost at this many
	// direct observed transitions.
	historySaturation = 10.0

	// maxStageSkills caps how many unmet skills a stage lists.
	maxStageSkills = 5
)

// Recommender simulates growth paths over one transition graph and one job
// catalog. Construct one per batch; it holds no mutable state after
// construction and is safe for concurrent use.
type Recommender struct {
	graph   *TransitionGraph
	catalog map[string]types.JobRequirement // keyed by trimmed job name
	logger  *zap.Logger
}

// NewRecommender builds a Recommender from a prebuilt graph and the candidate
// job catalog. A nil logger disables logging.
func NewRecommender(graph *TransitionGraph, jobs []types.JobRequirement, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := make(map[string]types.JobRequirement, len(jobs))
	for _, job := range jobs {
		name := strings.TrimSpace(job.Name)
		if name == "" {
			continue
		}
		catalog[name] = job
	}
	return &Recommender{graph: graph, catalog: catalog, logger: logger}
}

// SimulatePath projects a staged route from the employee's current job to the
// target. The job sequence comes from the caller-supplied intermediates when
// given, otherwise the graph's fewest-hops path; a disconnected target falls
// back to a degenerate direct two-node path rather than an error. Skills and
// years accumulate across stages: an employee who completes stage 1 is
// assumed to retain its skills entering stage 2.
func (r *Recommender) SimulatePath(employee *types.EmployeeProfile, target string, intermediates []string) *types.GrowthPath {
	current := strings.TrimSpace(employee.CurrentJob)
	target = strings.TrimSpace(target)

	sequence := r.jobSequence(current, target, intermediates)

	pool := parsing.SkillPool(employee)
	accumulatedYears := float64(employee.CareerYears)

	stages := make([]types.GrowthStage, 0, len(sequence)-1)
	totalYears := 0.0
	difficultySum := 0.0

	for i := 1; i < len(sequence); i++ {
		stage := r.simulateStage(sequence[i-1], sequence[i], pool, accumulatedYears)
		stages = append(stages, stage)

		totalYears += stage.ExpectedYears
		difficultySum += stage.DifficultyScore

		// The stage's requirements join the pool for the next hop.
		for skill := range r.requiredSkills(sequence[i]) {
			pool[skill] = true
		}
		accumulatedYears += stage.ExpectedYears
	}

	meanDifficulty := 0.0
	if len(stages) > 0 {
		meanDifficulty = difficultySum / float64(len(stages))
	}

	historical := r.graph.EdgeCount(current, target)

	path := &types.GrowthPath{
		CurrentJob:         current,
		TargetJob:          target,
		Stages:             stages,
		TotalYears:         round2(totalYears),
		DifficultyScore:    round2(meanDifficulty),
		SuccessProbability: successProbability(meanDifficulty, historical),
		HistoricalExamples: historical,
	}
	path.RecommendedActions = recommendedActions(path)
	return path
}

// jobSequence resolves the ordered list of jobs the path visits, endpoints
// included.
func (r *Recommender) jobSequence(current, target string, intermediates []string) []string {
	if len(intermediates) > 0 {
		sequence := make([]string, 0, len(intermediates)+2)
		sequence = append(sequence, current)
		sequence = append(sequence, intermediates...)
		return append(sequence, target)
	}
	if path := r.graph.ShortestPath(current, target); path != nil {
		return path
	}
	// Disconnected: degenerate direct transition.
	return []string{current, target}
}

func (r *Recommender) simulateStage(from, to string, pool map[string]bool, accumulatedYears float64) types.GrowthStage {
	required := r.requiredSkills(to)

	unmet := make([]string, 0)
	overlap := 0
	for skill := range required {
		if pool[skill] {
			overlap++
		} else {
			unmet = append(unmet, skill)
		}
	}
	unmet = sortStrings(unmet)
	skillGap := len(unmet)

	difficulty := r.transitionDifficulty(to, skillGap, overlap, len(required), accumulatedYears)

	_, hasHistory := r.graph.EdgeWeight(from, to)
	expectedYears := expectedStageYears(skillGap, hasHistory)

	stage := types.GrowthStage{
		JobName:         to,
		RequiredSkills:  topSkills(unmet, maxStageSkills),
		ExpectedYears:   expectedYears,
		DifficultyScore: round2(difficulty),
		SkillGap:        skillGap,
		IsAchievable:    difficulty < achievableDifficultyBar && skillGap < achievableSkillGapBar,
	}
	if !stage.IsAchievable {
		if difficulty >= achievableDifficultyBar {
			stage.Blockers = append(stage.Blockers,
				fmt.Sprintf("transition difficulty %.0f is too high", difficulty))
		}
		if skillGap >= achievableSkillGapBar {
			stage.Blockers = append(stage.Blockers,
				fmt.Sprintf("requires %d new skills", skillGap))
		}
	}
	return stage
}

// transitionDifficulty scores one hop into a target job on a 0-100 scale.
// The low-overlap penalty only applies to jobs with a known requirement set:
// a job absent from the catalog contributes no skill signal at all.
func (r *Recommender) transitionDifficulty(to string, skillGap, overlap, requiredCount int, accumulatedYears float64) float64 {
	difficulty := float64(skillGap) * difficultyPerMissingSkill

	if job, ok := r.catalog[to]; ok {
		if requiredYears, found := parsing.ExtractRequiredYears(job.Qualification); found {
			shortfall := float64(requiredYears) - accumulatedYears
			if shortfall > 0 {
				difficulty += shortfall * difficultyPerShortYear
			}
		}
	}

	if requiredCount > 0 && overlap < 2 {
		difficulty += lowOverlapPenalty
	}

	if difficulty > maxDifficulty {
		difficulty = maxDifficulty
	}
	return difficulty
}

// requiredSkills returns the normalized union of a job's basic and applied
// skills, or an empty set for jobs outside the catalog.
func (r *Recommender) requiredSkills(jobName string) map[string]bool {
	job, ok := r.catalog[jobName]
	if !ok {
		return map[string]bool{}
	}
	required := parsing.NormalizeSkillSet(job.BasicSkills)
	for s := range parsing.NormalizeSkillSet(job.AppliedSkills) {
		required[s] = true
	}
	return required
}

// expectedStageYears estimates one hop's duration. Observed historical
// transitions for the hop shorten the estimate.
func expectedStageYears(skillGap int, hasHistory bool) float64 {
	if hasHistory {
		return math.Max(1.0, float64(skillGap)*0.5)
	}
	return math.Max(1.5, float64(skillGap)*0.75)
}

// successProbability combines mean path difficulty with historical precedent.
// The result is clamped to [0.1, 0.9]: absence of data never proves a path
// impossible, and no path is certain.
func successProbability(meanDifficulty float64, historicalCount int) float64 {
	historyBoost := 0.5 + 0.5*math.Min(1.0, float64(historicalCount)/historySaturation)
	p := (maxDifficulty - meanDifficulty) / maxDifficulty * historyBoost
	if p < minSuccessProbability {
		p = minSuccessProbability
	}
	if p > maxSuccessProbability {
		p = maxSuccessProbability
	}
	return round2(p)
}

// recommendedActions derives up to 3 concrete next steps from the simulated
// path.
func recommendedActions(path *types.GrowthPath) []string {
	var actions []string

	if len(path.Stages) > 0 && len(path.Stages[0].RequiredSkills) > 0 {
		first := path.Stages[0]
		actions = append(actions, fmt.Sprintf("Acquire %s before moving into %s",
			strings.Join(first.RequiredSkills, ", "), first.JobName))
	}
	if path.TotalYears > 5 {
		actions = append(actions, fmt.Sprintf("Plan the %s transition as staged moves over %.1f years",
			path.TargetJob, path.TotalYears))
	}
	if path.SuccessProbability < 0.3 {
		actions = append(actions, "Build precedent through internal mobility before committing to this route")
	}
	if path.HistoricalExamples > 0 && len(actions) < 3 {
		actions = append(actions, fmt.Sprintf("Review the %d prior %s→%s transitions for mentoring contacts",
			path.HistoricalExamples, path.CurrentJob, path.TargetJob))
	}
	if len(actions) > 3 {
		actions = actions[:3]
	}
	return actions
}

func topSkills(skills []string, n int) []string {
	if len(skills) <= n {
		return skills
	}
	return skills[:n]
}

func sortStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
