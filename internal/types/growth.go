package types

// GrowthStage is one hop of a simulated career path.
type GrowthStage struct {
	JobName         string   `json:"job_name"`
	RequiredSkills  []string `json:"required_skills"` // top unmet skills entering this stage
	ExpectedYears   float64  `json:"expected_years"`
	DifficultyScore float64  `json:"difficulty_score"` // 0-100
	SkillGap        int      `json:"skill_gap"`
	IsAchievable    bool     `json:"is_achievable"`
	Blockers        []string `json:"blockers,omitempty"`
}

// GrowthPath is a full simulated route from the employee's current job to a
// target job. TotalYears is exactly the sum of stage years; DifficultyScore
// is the mean of stage difficulties.
type GrowthPath struct {
	CurrentJob         string        `json:"current_job"`
	TargetJob          string        `json:"target_job"`
	Stages             []GrowthStage `json:"stages"`
	TotalYears         float64       `json:"total_years"`
	DifficultyScore    float64       `json:"difficulty_score"`
	SuccessProbability float64       `json:"success_probability"` // 0.1-0.9
	RecommendedActions []string      `json:"recommended_actions"`
	HistoricalExamples int           `json:"historical_examples"` // direct observed current→target transitions
}

// ReachableJob is one candidate target that survived the reachability filter.
type ReachableJob struct {
	JobID       string  `json:"job_id"`
	JobName     string  `json:"job_name"`
	Probability float64 `json:"probability"`
	Difficulty  float64 `json:"difficulty"`
	Years       float64 `json:"estimated_years"`
	Direct      bool    `json:"direct"` // true when a direct historical edge exists
}

// ReversePath is one predecessor chain ending at a target job, scored by the
// product of its forward edge weights.
type ReversePath struct {
	Jobs  []string `json:"jobs"` // ordered forward, last element is the target
	Score float64  `json:"score"`
}

// PathRecommendation pairs a simulated path with its ranking priority and the
// reverse-path alternatives leading into the same target.
type PathRecommendation struct {
	Path         *GrowthPath   `json:"path"`
	Priority     float64       `json:"priority"`
	Alternatives []ReversePath `json:"alternatives,omitempty"`
}
