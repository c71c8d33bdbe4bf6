package leadership

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-compass/internal/types"
)

// EvaluationPeriod selects how much evaluation history the readiness check
// averages over.
type EvaluationPeriod string

// Supported evaluation windows.
const (
	PeriodLatest  EvaluationPeriod = "latest"  // single most recent record
	PeriodRecent2 EvaluationPeriod = "recent2" // last 2 periods (default)
	PeriodRecent4 EvaluationPeriod = "recent4" // last 4 periods
)

func (p EvaluationPeriod) window() int {
	switch p {
	case PeriodLatest:
		return 1
	case PeriodRecent4:
		return 4
	default:
		return 2
	}
}

// Score weights and bonuses. Each term is independently attributable so a
// reviewer can reconstruct the total from the qualification details.
const (
	evaluationScoreWeight = 30.0
	topGradeBonus         = 5.0 // latest overall grade S or A+
	skillScoreWeight      = 30.0
	levelScoreWeight      = 20.0
	levelExceededBonus    = 5.0
	experienceScoreWeight = 20.0
	leadershipBonus       = 5.0
)

// Evaluator runs the four-factor readiness assessment. Stateless; safe for
// concurrent use.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator returns an Evaluator. A nil logger disables logging.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate produces the full readiness report for one employee against one
// target role. IsQualified requires all four checks to pass; the total score
// and risk factors are advisory and computed either way.
func (e *Evaluator) Evaluate(employee *types.EmployeeProfile, job *types.JobRequirement, period EvaluationPeriod) *types.ReadinessReport {
	details := e.qualificationDetails(employee, job, job.EvaluationStandard, job.MinRequiredLevel, period)

	report := &types.ReadinessReport{
		EmployeeID:           employee.EmployeeID,
		TargetJobID:          job.JobID,
		QualificationDetails: details,
		IsQualified: details.Evaluation.IsSatisfied &&
			details.Level.IsSatisfied &&
			details.Skills.IsSatisfied &&
			details.Experience.IsSatisfied,
		TotalScore:  totalScore(employee, details),
		RiskFactors: riskFactors(employee, details),
	}
	report.RecommendationReason = recommendationReason(employee, details)
	return report
}

func (e *Evaluator) qualificationDetails(employee *types.EmployeeProfile, job *types.JobRequirement, requiredGrade, requiredLevel string, period EvaluationPeriod) types.QualificationDetails {
	return types.QualificationDetails{
		Evaluation: checkEvaluation(employee, requiredGrade, job.MinProfessionalism, period.window()),
		Level:      checkLevel(employee.CurrentLevel, requiredLevel),
		Skills:     checkSkills(job, employee),
		Experience: checkExperience(job, employee),
	}
}

// totalScore is the weighted sum over the four factors, clamped to 100.
func totalScore(employee *types.EmployeeProfile, details types.QualificationDetails) float64 {
	score := 0.0

	if details.Evaluation.IsSatisfied {
		score += evaluationScoreWeight
	}
	if latest := employee.LatestEvaluation(); latest != nil &&
		types.GradeAtLeast(latest.OverallGrade, "A+") {
		score += topGradeBonus
	}

	score += details.Skills.MatchRate * skillScoreWeight

	if details.Level.IsSatisfied {
		score += levelScoreWeight
		current, currentOK := parseLevel(details.Level.CurrentLevel)
		required, requiredOK := parseLevel(details.Level.RequiredLevel)
		if currentOK && requiredOK && current > required {
			score += levelExceededBonus
		}
	}

	if details.Experience.IsSatisfied {
		score += experienceScoreWeight
	}
	if details.Experience.LeadershipYears > 0 {
		score += leadershipBonus
	}

	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}

// riskFactors flags advisory (non-gating) concerns.
func riskFactors(employee *types.EmployeeProfile, details types.QualificationDetails) []string {
	risks := []string{}

	if len(details.Skills.MissingSkills) > 2 {
		risks = append(risks, fmt.Sprintf("missing %d required skills", len(details.Skills.MissingSkills)))
	}
	if details.Experience.NeedsLeadership && details.Experience.LeadershipYears <= 0 {
		risks = append(risks, "no leadership experience for a leadership role")
	}
	if trend, declining := gradeTrend(employee); declining {
		risks = append(risks, fmt.Sprintf("declining evaluation trend (%s)", trend))
	}
	if len(employee.DepartmentHistory) > 3 {
		risks = append(risks, fmt.Sprintf("%d department changes on record", len(employee.DepartmentHistory)))
	}
	return risks
}

// gradeTrend compares the two most recent overall grades; a drop in the
// fixed grade order counts as declining.
func gradeTrend(employee *types.EmployeeProfile) (string, bool) {
	window := employee.EvaluationWindow(2)
	if len(window) < 2 {
		return "", false
	}
	latest, ok1 := types.GradeRank(window[0].OverallGrade)
	previous, ok2 := types.GradeRank(window[1].OverallGrade)
	if !ok1 || !ok2 || latest >= previous {
		return "", false
	}
	return fmt.Sprintf("%s → %s", window[1].OverallGrade, window[0].OverallGrade), true
}

// recommendationReason assembles the reason text from whichever signals are
// strongest, so every sentence traces back to a qualification detail.
func recommendationReason(employee *types.EmployeeProfile, details types.QualificationDetails) string {
	var parts []string

	if latest := employee.LatestEvaluation(); latest != nil && latest.OverallGrade != "" {
		if types.GradeAtLeast(latest.OverallGrade, "A") {
			parts = append(parts, fmt.Sprintf("sustained %s-grade performance", latest.OverallGrade))
		} else if details.Evaluation.IsSatisfied {
			parts = append(parts, fmt.Sprintf("evaluation average %.1f meets the bar", details.Evaluation.AverageScore))
		}
	}

	totalRequired := len(details.Skills.MatchedSkills) + len(details.Skills.MissingSkills)
	if totalRequired > 0 && details.Skills.IsSatisfied {
		parts = append(parts, fmt.Sprintf("covers %d of %d required skills",
			len(details.Skills.MatchedSkills), totalRequired))
	}

	if details.Experience.LeadershipYears > 0 {
		parts = append(parts, fmt.Sprintf("%d years of leadership experience", details.Experience.LeadershipYears))
	} else if details.Experience.IsSatisfied {
		parts = append(parts, fmt.Sprintf("%d years of tenure", details.Experience.CurrentYears))
	}

	if len(parts) == 0 {
		blocked := []string{}
		if !details.Evaluation.IsSatisfied {
			blocked = append(blocked, "evaluation history")
		}
		if !details.Skills.IsSatisfied {
			blocked = append(blocked, "skill coverage")
		}
		if !details.Level.IsSatisfied {
			blocked = append(blocked, "growth level")
		}
		if !details.Experience.IsSatisfied {
			blocked = append(blocked, "experience")
		}
		return "not recommended: falls short on " + strings.Join(blocked, ", ")
	}
	return strings.Join(parts, "; ")
}
