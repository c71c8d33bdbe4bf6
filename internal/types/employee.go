package types

// EmployeeProfile represents one employee as supplied by an employee-profile store.
// Optional fields may be nil/empty; the engine treats absent data as empty and
// degrades scores instead of erroring.
type EmployeeProfile struct {
	EmployeeID       string   `json:"employee_id" validate:"required"`
	Name             string   `json:"name,omitempty"`
	CareerYears      int      `json:"career_years,omitempty" validate:"gte=0"`
	Skills           []string `json:"skills,omitempty"`
	Certifications   []string `json:"certifications,omitempty"`
	CompletedCourses []string `json:"completed_courses,omitempty"`

	// RecentEvaluation is the single most recent periodic evaluation.
	// RecentEvaluations is the full window ordered most recent first; when both
	// are present they must agree on the first element.
	RecentEvaluation  *EvaluationRecord  `json:"recent_evaluation,omitempty"`
	RecentEvaluations []EvaluationRecord `json:"recent_evaluations,omitempty" validate:"dive"`

	LeadershipExperience *LeadershipExperience `json:"leadership_experience,omitempty"`

	CurrentJob      string `json:"current_job,omitempty"`
	CurrentPosition string `json:"current_position,omitempty"`
	CurrentLevel    string `json:"current_level,omitempty"` // growth level, e.g. "Lv.2"

	// DepartmentHistory lists past department assignments, most recent first.
	DepartmentHistory []string `json:"department_history,omitempty"`
}

// LeadershipExperience records prior people-leadership exposure.
type LeadershipExperience struct {
	Years int    `json:"years"`
	Type  string `json:"type,omitempty"` // e.g. "팀장", "파트장", "TF리더"
}

// LatestEvaluation returns the most recent evaluation record, preferring the
// explicit RecentEvaluation field over the head of RecentEvaluations.
// Returns nil when the employee has no evaluation history at all.
func (e *EmployeeProfile) LatestEvaluation() *EvaluationRecord {
	if e.RecentEvaluation != nil {
		return e.RecentEvaluation
	}
	if len(e.RecentEvaluations) > 0 {
		return &e.RecentEvaluations[0]
	}
	return nil
}

// EvaluationWindow returns up to n most-recent evaluation records. When only
// the single RecentEvaluation is present it is returned as a one-element window.
func (e *EmployeeProfile) EvaluationWindow(n int) []EvaluationRecord {
	if n <= 0 {
		return nil
	}
	if len(e.RecentEvaluations) > 0 {
		if n > len(e.RecentEvaluations) {
			n = len(e.RecentEvaluations)
		}
		return e.RecentEvaluations[:n]
	}
	if e.RecentEvaluation != nil {
		return []EvaluationRecord{*e.RecentEvaluation}
	}
	return nil
}
