// Package leadership evaluates leadership readiness with four independent
// qualification checks and produces ranked, risk-annotated candidate lists.
package leadership

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-compass/internal/parsing"
	"github.com/jonathan/talent-compass/internal/types"
)

// skillMatchBar is the minimum required-skill coverage for the skills check.
const skillMatchBar = 0.7

// levelPattern parses growth levels written as "Lv.3" / "Lv 3" / "lv3".
var levelPattern = regexp.MustCompile(`(?i)lv\.?\s*(\d+)`)

// Role-keyword tenure defaults applied when the qualification text carries no
// explicit year figure. Checked in order so the most senior keyword wins.
var roleTenureDefaults = []struct {
	keywords []string
	years    int
}{
	{[]string{"센터장", "본부장", "center head", "director"}, 10},
	{[]string{"팀장", "팀 리더", "team lead", "chapter lead"}, 7},
	{[]string{"매니저", "manager", "파트장"}, 5},
}

// leadershipKeywords mark job titles that imply people leadership; such roles
// require positive leadership-experience years regardless of tenure.
var leadershipKeywords = []string{
	"팀장", "센터장", "본부장", "파트장", "매니저", "리더",
	"lead", "head", "manager", "chief",
}

// checkEvaluation averages the selected evaluation window on the 5-point
// grade scale and compares it to the required grade. When the job carries a
// separate professionalism bar, the latest professionalism must clear it
// independently.
func checkEvaluation(employee *types.EmployeeProfile, requiredGrade, requiredProfessionalism string, window int) types.EvaluationCheck {
	check := types.EvaluationCheck{RequiredGrade: requiredGrade, Professional: true}

	records := employee.EvaluationWindow(window)
	sum := 0.0
	counted := 0
	for _, record := range records {
		if points, ok := types.GradePoints(record.OverallGrade); ok {
			sum += points
			counted++
		}
	}
	if counted > 0 {
		check.AverageScore = sum / float64(counted)
	}

	if requiredGrade != "" {
		required, ok := types.GradePoints(requiredGrade)
		if ok {
			check.RequiredScore = required
		}
	}

	if requiredProfessionalism != "" {
		latest := employee.LatestEvaluation()
		check.Professional = latest != nil &&
			types.GradeAtLeast(latest.Professionalism, requiredProfessionalism)
	}

	check.IsSatisfied = check.AverageScore >= check.RequiredScore && check.Professional
	return check
}

// checkLevel compares growth levels ordinally on the fixed Lv.1-Lv.5 scale.
func checkLevel(currentLevel, requiredLevel string) types.LevelCheck {
	check := types.LevelCheck{
		CurrentLevel:  currentLevel,
		RequiredLevel: requiredLevel,
	}

	required, requiredOK := parseLevel(requiredLevel)
	if !requiredOK {
		// No level requirement on the job.
		check.IsSatisfied = true
		return check
	}

	current, currentOK := parseLevel(currentLevel)
	if !currentOK {
		check.Gap = required
		return check
	}

	check.IsSatisfied = current >= required
	if required > current {
		check.Gap = required - current
	}
	return check
}

// checkSkills matches required skills against the employee's pool using
// fuzzy case-insensitive containment: exact, or substring in either
// direction. Satisfied at 70% coverage.
func checkSkills(job *types.JobRequirement, employee *types.EmployeeProfile) types.SkillCheck {
	required := parsing.NormalizeSkillSet(job.BasicSkills)
	for s := range parsing.NormalizeSkillSet(job.AppliedSkills) {
		required[s] = true
	}
	pool := parsing.SortedSet(parsing.SkillPool(employee))

	check := types.SkillCheck{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}
	if len(required) == 0 {
		check.MatchRate = 1.0
		check.IsSatisfied = true
		return check
	}

	for _, skill := range parsing.SortedSet(required) {
		if fuzzyContains(pool, skill) {
			check.MatchedSkills = append(check.MatchedSkills, skill)
		} else {
			check.MissingSkills = append(check.MissingSkills, skill)
		}
	}

	check.MatchRate = float64(len(check.MatchedSkills)) / float64(len(required))
	check.IsSatisfied = check.MatchRate >= skillMatchBar
	return check
}

// checkExperience extracts the minimum years from the job's qualification
// text, falling back to role-keyword defaults, and requires leadership
// experience for leadership-implying titles.
func checkExperience(job *types.JobRequirement, employee *types.EmployeeProfile) types.ExperienceCheck {
	required, found := parsing.ExtractRequiredYears(job.Qualification)
	if !found {
		required = roleDefaultYears(job.Name)
	}

	check := types.ExperienceCheck{
		CurrentYears:    employee.CareerYears,
		RequiredYears:   required,
		NeedsLeadership: impliesLeadership(job.Name),
	}
	if employee.LeadershipExperience != nil {
		check.LeadershipYears = employee.LeadershipExperience.Years
	}

	check.IsSatisfied = employee.CareerYears >= required
	if check.NeedsLeadership && check.LeadershipYears <= 0 {
		check.IsSatisfied = false
	}
	return check
}

func parseLevel(level string) (int, bool) {
	m := levelPattern.FindStringSubmatch(level)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func fuzzyContains(pool []string, skill string) bool {
	for _, have := range pool {
		if have == skill || strings.Contains(have, skill) || strings.Contains(skill, have) {
			return true
		}
	}
	return false
}

func roleDefaultYears(jobName string) int {
	name := strings.ToLower(jobName)
	for _, rule := range roleTenureDefaults {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.years
			}
		}
	}
	return 0
}

func impliesLeadership(jobName string) bool {
	name := strings.ToLower(jobName)
	for _, keyword := range leadershipKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
