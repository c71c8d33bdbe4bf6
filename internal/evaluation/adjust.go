package evaluation

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/matching"
	"github.com/jonathan/talent-compass/internal/types"
)

// Options controls one adjustment call.
type Options struct {
	// ExcludeLowPerformers forces MatchScore to 0 for ineligible employees
	// instead of merely flagging them.
	ExcludeLowPerformers bool
	// EvaluationWeight scales the total bonus before it is applied, 0-1.
	EvaluationWeight float64
}

// Adjuster applies evaluation-grade bonuses and eligibility gates on top of
// base match results. Construct one per caller; it holds no mutable state and
// is safe for concurrent use.
type Adjuster struct {
	logger *zap.Logger
}

// NewAdjuster returns an Adjuster. A nil logger disables logging.
func NewAdjuster(logger *zap.Logger) *Adjuster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adjuster{logger: logger}
}

// Adjust matches the employee against the job and applies the
// evaluation-grade adjustment. Employees without any evaluation record get
// the base result back unchanged with EvaluationApplied=false.
func (a *Adjuster) Adjust(job *types.JobRequirement, employee *types.EmployeeProfile, opts Options) *types.AdjustedResult {
	base := matching.Match(job, employee)

	eval := employee.LatestEvaluation()
	if eval == nil {
		return &types.AdjustedResult{
			MatchResult:       *base,
			EvaluationApplied: false,
			IsEligible:        true,
		}
	}

	breakdown, totalBonus := a.scoreAxes(employee.EmployeeID, eval)
	eligible, reason := checkEligibility(eval)

	result := &types.AdjustedResult{
		MatchResult:       *base,
		EvaluationApplied: true,
		IsEligible:        eligible,
	}

	if opts.ExcludeLowPerformers && !eligible {
		// Exclusion mode: score forced to zero, bonus fields stay absent.
		result.MatchScore = 0
		result.OriginalMatchScore = base.MatchScore
		result.ExclusionReason = reason
		return result
	}

	weighted := float64(totalBonus) * opts.EvaluationWeight
	result.OriginalMatchScore = base.MatchScore
	result.EvaluationBonus = round2(weighted)
	result.MatchScore = round2(clamp(base.MatchScore+weighted, 0, 100))
	result.Breakdown = breakdown
	if !eligible {
		result.ExclusionReason = reason
	}
	result.Recommendations = append(result.Recommendations, evaluationRecommendations(eval)...)

	return result
}

// AdjustMany adjusts the employee against each job, drops results below
// minScore, and returns the top n by adjusted score descending, ties keeping
// input order. topN <= 0 means no limit.
func (a *Adjuster) AdjustMany(jobs []types.JobRequirement, employee *types.EmployeeProfile, opts Options, topN int, minScore float64) []types.AdjustedResult {
	results := make([]types.AdjustedResult, 0, len(jobs))
	for i := range jobs {
		r := a.Adjust(&jobs[i], employee, opts)
		if r.MatchScore < minScore {
			continue
		}
		results = append(results, *r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

// scoreAxes maps the four evaluation axes through their bonus tables.
// Unmapped labels score 0 and are logged rather than silently swallowed.
func (a *Adjuster) scoreAxes(employeeID string, eval *types.EvaluationRecord) (map[string]types.AxisBonus, int) {
	breakdown := make(map[string]types.AxisBonus, 4)
	total := 0

	axes := []struct {
		name  string
		label string
		table map[string]int
	}{
		{"professionalism", eval.Professionalism, professionalismBonus},
		{"contribution", eval.Contribution, contributionBonus},
		{"impact", eval.Impact, impactBonus},
		{"overall", eval.OverallGrade, overallBonus},
	}

	for _, axis := range axes {
		bonus, ok := axis.table[axis.label]
		if !ok && axis.label != "" {
			a.logger.Warn("unmapped evaluation label, scoring neutral",
				zap.String("employee_id", employeeID),
				zap.String("axis", axis.name),
				zap.String("label", axis.label),
			)
		}
		breakdown[axis.name] = types.AxisBonus{Label: axis.label, Bonus: bonus}
		total += bonus
	}

	return breakdown, total
}

// checkEligibility applies the hard gates that are independent of the
// numeric bonus.
func checkEligibility(eval *types.EvaluationRecord) (bool, string) {
	if ineligibleOverallGrades[eval.OverallGrade] {
		return false, fmt.Sprintf("overall grade %s is below the eligibility bar", eval.OverallGrade)
	}
	if ineligibleContributions[eval.Contribution] {
		return false, fmt.Sprintf("contribution ranking %q is below the eligibility bar", eval.Contribution)
	}
	return true, ""
}

// evaluationRecommendations appends grade-driven guidance to the match
// recommendations.
func evaluationRecommendations(eval *types.EvaluationRecord) []string {
	var recs []string

	if r, ok := types.GradeRank(eval.Professionalism); ok && r <= mustRank("C") {
		recs = append(recs, "Professionalism development needed before taking on a larger role")
	}
	if types.GradeAtLeast(eval.OverallGrade, "A+") {
		recs = append(recs, "Consistently high overall grade: eligible for a stretch assignment")
	}
	if ineligibleContributions[eval.Contribution] {
		recs = append(recs, "Contribution ranking must improve before promotion consideration")
	}
	return recs
}

func mustRank(grade string) int {
	r, _ := types.GradeRank(grade)
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
