package types

// TierMatch is the per-tier (basic or applied) skill comparison outcome.
type TierMatch struct {
	Score        float64  `json:"score"` // 0-100 set similarity
	Missing      []string `json:"missing"`
	MatchedCount int      `json:"matched_count"`
}

// SkillMatch groups the two requirement tiers.
type SkillMatch struct {
	Basic   TierMatch `json:"basic"`
	Applied TierMatch `json:"applied"`
}

// QualificationMatch captures the year-requirement comparison.
type QualificationMatch struct {
	Score         float64 `json:"score"` // 100 when no requirement or met, else penalized
	RequiredYears int     `json:"required_years,omitempty"`
	Met           bool    `json:"met"`
}

// Gaps enumerates what the employee is missing against the job.
type Gaps struct {
	BasicSkills   []string `json:"basic_skills"`
	AppliedSkills []string `json:"applied_skills"`
	Qualification string   `json:"qualification,omitempty"`
}

// MatchResult is the outcome of matching one employee against one job.
// MatchScore is always reproducible from its sub-scores:
// skill = basic*0.6 + applied*0.4, match = skill*0.7 + qualification*0.3.
type MatchResult struct {
	JobID           string             `json:"job_id"`
	JobName         string             `json:"job_name,omitempty"`
	EmployeeID      string             `json:"employee_id"`
	MatchScore      float64            `json:"match_score"` // 0-100, 2 decimals
	SkillMatch      SkillMatch         `json:"skill_match"`
	Qualification   QualificationMatch `json:"qualification_match"`
	Gaps            Gaps               `json:"gaps"`
	Recommendations []string           `json:"recommendations"`
}

// AxisBonus is one row of the evaluation-adjustment audit breakdown.
type AxisBonus struct {
	Label string `json:"label"` // the grade/bucket/scope label that was looked up
	Bonus int    `json:"bonus"`
}

// AdjustedResult extends MatchResult with the evaluation-grade adjustment.
// When IsEligible is false under exclusion mode, MatchScore is 0 and the
// bonus fields are zero-valued.
type AdjustedResult struct {
	MatchResult

	EvaluationApplied  bool    `json:"evaluation_applied"`
	OriginalMatchScore float64 `json:"original_match_score,omitempty"`
	EvaluationBonus    float64 `json:"evaluation_bonus,omitempty"`
	IsEligible         bool    `json:"is_eligible"`
	ExclusionReason    string  `json:"exclusion_reason,omitempty"`

	// Breakdown keys: professionalism, contribution, impact, overall.
	Breakdown map[string]AxisBonus `json:"evaluation_breakdown,omitempty"`
}

// PromotionReadiness is the outcome of the promotion-readiness analysis.
// IsReady is a conjunction of independently explainable conditions, never a
// single opaque threshold.
type PromotionReadiness struct {
	EmployeeID       string          `json:"employee_id"`
	TargetJobID      string          `json:"target_job_id"`
	Result           *AdjustedResult `json:"result"`
	Strengths        []string        `json:"strengths"`
	ImprovementAreas []string        `json:"improvement_areas"`
	IsReady          bool            `json:"is_ready"`
}
