package leadership

import (
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/types"
)

// CandidateOptions tunes one recommendation batch. MinGrade and MinLevel
// override the job's own EvaluationStandard / MinRequiredLevel when set.
type CandidateOptions struct {
	MinGrade             string
	MinLevel             string
	TopN                 int
	ExcludeLowPerformers bool
	Period               EvaluationPeriod
}

// excludedGrades are filtered before evaluation when ExcludeLowPerformers is
// set.
var excludedGrades = map[string]bool{
	"C": true,
	"D": true,
}

// RecommendCandidates evaluates every employee against the target role and
// returns only the fully qualified ones, ranked by total score descending.
// Under ExcludeLowPerformers, employees whose latest overall grade is C or D
// are dropped before evaluation.
func (e *Evaluator) RecommendCandidates(job *types.JobRequirement, employees []types.EmployeeProfile, opts CandidateOptions) []types.LeaderCandidate {
	requiredGrade := job.EvaluationStandard
	if opts.MinGrade != "" {
		requiredGrade = opts.MinGrade
	}
	requiredLevel := job.MinRequiredLevel
	if opts.MinLevel != "" {
		requiredLevel = opts.MinLevel
	}

	candidates := make([]types.LeaderCandidate, 0, len(employees))
	for i := range employees {
		employee := &employees[i]

		if opts.ExcludeLowPerformers {
			if latest := employee.LatestEvaluation(); latest != nil && excludedGrades[latest.OverallGrade] {
				e.logger.Debug("candidate excluded as low performer",
					zap.String("employee_id", employee.EmployeeID),
					zap.String("overall_grade", latest.OverallGrade),
				)
				continue
			}
		}

		details := e.qualificationDetails(employee, job, requiredGrade, requiredLevel, opts.Period)
		qualified := details.Evaluation.IsSatisfied &&
			details.Level.IsSatisfied &&
			details.Skills.IsSatisfied &&
			details.Experience.IsSatisfied
		if !qualified {
			continue
		}

		candidates = append(candidates, types.LeaderCandidate{
			EmployeeID:           employee.EmployeeID,
			Name:                 employee.Name,
			MatchScore:           totalScore(employee, details),
			SkillMatch:           details.Skills,
			QualificationDetails: details,
			IsQualified:          true,
			RiskFactors:          riskFactors(employee, details),
			RecommendationReason: recommendationReason(employee, details),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	if opts.TopN > 0 && len(candidates) > opts.TopN {
		candidates = candidates[:opts.TopN]
	}
	return candidates
}
