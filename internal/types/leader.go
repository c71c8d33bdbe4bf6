package types

// EvaluationCheck is the evaluation-window qualification sub-check.
type EvaluationCheck struct {
	IsSatisfied   bool    `json:"is_satisfied"`
	AverageScore  float64 `json:"average_score"` // 5-point scale
	RequiredScore float64 `json:"required_score"`
	RequiredGrade string  `json:"required_grade,omitempty"`
	Professional  bool    `json:"professionalism_met"` // latest professionalism clears its own bar
}

// LevelCheck is the growth-level qualification sub-check.
type LevelCheck struct {
	IsSatisfied   bool   `json:"is_satisfied"`
	CurrentLevel  string `json:"current"`
	RequiredLevel string `json:"required"`
	Gap           int    `json:"gap"` // max(0, required-current)
}

// SkillCheck is the required-skill coverage sub-check.
type SkillCheck struct {
	IsSatisfied   bool     `json:"is_satisfied"`
	MatchRate     float64  `json:"match_rate"` // matched/required, 0-1
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ExperienceCheck is the tenure / leadership-experience sub-check.
type ExperienceCheck struct {
	IsSatisfied     bool `json:"is_satisfied"`
	CurrentYears    int  `json:"current"`
	RequiredYears   int  `json:"required"`
	LeadershipYears int  `json:"leadership_years"`
	NeedsLeadership bool `json:"needs_leadership"` // target title implies a leadership role
}

// QualificationDetails groups the four independent sub-checks.
type QualificationDetails struct {
	Evaluation EvaluationCheck `json:"evaluation"`
	Level      LevelCheck      `json:"level"`
	Skills     SkillCheck      `json:"skills"`
	Experience ExperienceCheck `json:"experience"`
}

// ReadinessReport is the full four-factor readiness breakdown for one
// employee against one target role.
type ReadinessReport struct {
	EmployeeID           string               `json:"employee_id"`
	TargetJobID          string               `json:"target_job_id"`
	IsQualified          bool                 `json:"is_qualified"`
	TotalScore           float64              `json:"total_score"` // 0-100
	QualificationDetails QualificationDetails `json:"qualification_details"`
	RiskFactors          []string             `json:"risk_factors"`
	RecommendationReason string               `json:"recommendation_reason"`
}

// LeaderCandidate is one ranked entry in a candidate recommendation list.
type LeaderCandidate struct {
	EmployeeID           string               `json:"employee_id"`
	Name                 string               `json:"name,omitempty"`
	MatchScore           float64              `json:"match_score"` // 0-100
	SkillMatch           SkillCheck           `json:"skill_match"`
	QualificationDetails QualificationDetails `json:"qualification_details"`
	IsQualified          bool                 `json:"is_qualified"`
	RiskFactors          []string             `json:"risk_factors"`
	RecommendationReason string               `json:"recommendation_reason"`
}
