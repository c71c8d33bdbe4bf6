package evaluation

import (
	"fmt"

	"github.com/jonathan/talent-compass/internal/types"
)

const (
	// promotionEvaluationWeight is the fixed bonus weight used for the
	// readiness analysis; exclusion is never applied here so the breakdown is
	// always available to explain the verdict.
	promotionEvaluationWeight = 1.0

	// readinessScoreBar is the adjusted-score floor for IsReady.
	readinessScoreBar = 75.0

	// readinessGradeBar is the minimum overall grade for IsReady.
	readinessGradeBar = "B+"
)

// AnalyzePromotionReadiness runs the adjuster without exclusion, classifies
// strengths and improvement areas from the same grade comparisons, and
// reports readiness as a conjunction of independently explainable conditions:
// no improvement areas, adjusted score >= 75, and overall grade >= B+.
func (a *Adjuster) AnalyzePromotionReadiness(employee *types.EmployeeProfile, targetJob *types.JobRequirement, minGrade string) *types.PromotionReadiness {
	if minGrade == "" {
		minGrade = readinessGradeBar
	}

	result := a.Adjust(targetJob, employee, Options{
		ExcludeLowPerformers: false,
		EvaluationWeight:     promotionEvaluationWeight,
	})

	analysis := &types.PromotionReadiness{
		EmployeeID:       employee.EmployeeID,
		TargetJobID:      targetJob.JobID,
		Result:           result,
		Strengths:        []string{},
		ImprovementAreas: []string{},
	}

	eval := employee.LatestEvaluation()
	if eval == nil {
		analysis.ImprovementAreas = append(analysis.ImprovementAreas,
			"no recent evaluation on record")
		return analysis
	}

	// Overall grade is judged against the caller's bar; the other three axes
	// classify by the sign of their bonus-table entry, so every verdict traces
	// back to the same tables that produced the adjusted score.
	if eval.OverallGrade != "" {
		if types.GradeAtLeast(eval.OverallGrade, minGrade) {
			analysis.Strengths = append(analysis.Strengths,
				fmt.Sprintf("overall grade: %s", eval.OverallGrade))
		} else {
			analysis.ImprovementAreas = append(analysis.ImprovementAreas,
				fmt.Sprintf("overall grade: %s", eval.OverallGrade))
		}
	}
	classifyAxis(analysis, "professionalism", eval.Professionalism, professionalismBonus)
	classifyAxis(analysis, "contribution ranking", eval.Contribution, contributionBonus)
	classifyAxis(analysis, "organizational impact", eval.Impact, impactBonus)

	analysis.IsReady = len(analysis.ImprovementAreas) == 0 &&
		result.MatchScore >= readinessScoreBar &&
		types.GradeAtLeast(eval.OverallGrade, readinessGradeBar)

	return analysis
}

// classifyAxis files a labeled axis under strengths when its bonus is
// positive and under improvement areas when negative. Neutral and unmapped
// labels are left out of both lists.
func classifyAxis(analysis *types.PromotionReadiness, axis, label string, table map[string]int) {
	if label == "" {
		return
	}
	bonus := table[label]
	switch {
	case bonus > 0:
		analysis.Strengths = append(analysis.Strengths, fmt.Sprintf("%s: %s", axis, label))
	case bonus < 0:
		analysis.ImprovementAreas = append(analysis.ImprovementAreas, fmt.Sprintf("%s: %s", axis, label))
	}
}
