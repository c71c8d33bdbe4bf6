// Package matching computes fitness scores between job requirement sets and
// employee profiles, producing skill gaps and textual recommendations.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/talent-compass/internal/parsing"
	"github.com/jonathan/talent-compass/internal/types"
)

// Weights for combining sub-scores. MatchScore is always reproducible from
// its parts: skill = basic*0.6 + applied*0.4, match = skill*0.7 + qual*0.3.
const (
	basicSkillWeight    = 0.6
	appliedSkillWeight  = 0.4
	skillWeight         = 0.7
	qualificationWeight = 0.3

	// Flat penalty applied when the employee's career years fall short of the
	// extracted requirement, regardless of shortfall size.
	yearShortfallPenalty = 30.0

	maxRecommendations = 3
	maxNamedSkills     = 3
)

// Match scores one employee against one job requirement set. It has no side
// effects, never errors, and is deterministic for identical inputs: absent
// optional fields degrade scores instead of failing.
func Match(job *types.JobRequirement, employee *types.EmployeeProfile) *types.MatchResult {
	pool := parsing.SkillPool(employee)

	basicRequired := parsing.NormalizeSkillSet(job.BasicSkills)
	appliedRequired := parsing.NormalizeSkillSet(job.AppliedSkills)

	basicScore, basicMissing, basicMatched := parsing.SetSimilarity(basicRequired, pool)
	appliedScore, appliedMissing, appliedMatched := parsing.SetSimilarity(appliedRequired, pool)

	qualification := matchQualification(job.Qualification, employee.CareerYears)

	skillScore := basicScore*basicSkillWeight + appliedScore*appliedSkillWeight
	matchScore := round2(skillScore*skillWeight + qualification.Score*qualificationWeight)

	result := &types.MatchResult{
		JobID:      job.JobID,
		JobName:    job.Name,
		EmployeeID: employee.EmployeeID,
		MatchScore: matchScore,
		SkillMatch: types.SkillMatch{
			Basic: types.TierMatch{
				Score:        round2(basicScore),
				Missing:      basicMissing,
				MatchedCount: basicMatched,
			},
			Applied: types.TierMatch{
				Score:        round2(appliedScore),
				Missing:      appliedMissing,
				MatchedCount: appliedMatched,
			},
		},
		Qualification: qualification,
		Gaps: types.Gaps{
			BasicSkills:   basicMissing,
			AppliedSkills: appliedMissing,
			Qualification: qualificationGap(qualification, employee.CareerYears),
		},
	}

	result.Recommendations = buildRecommendations(result, employee)
	return result
}

// MatchMany scores an employee against each job, drops results below
// minScore, and returns the top n sorted by score descending. Ties keep
// input order (stable sort). topN <= 0 means no limit.
func MatchMany(jobs []types.JobRequirement, employee *types.EmployeeProfile, topN int, minScore float64) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(jobs))
	for i := range jobs {
		r := Match(&jobs[i], employee)
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

// matchQualification compares the year requirement embedded in the
// qualification text against the employee's career years. Texts without a
// year figure score 100.
func matchQualification(qualification string, careerYears int) types.QualificationMatch {
	requiredYears, found := parsing.ExtractRequiredYears(qualification)
	if !found {
		return types.QualificationMatch{Score: 100.0, Met: true}
	}
	if careerYears >= requiredYears {
		return types.QualificationMatch{Score: 100.0, RequiredYears: requiredYears, Met: true}
	}
	return types.QualificationMatch{
		Score:         100.0 - yearShortfallPenalty,
		RequiredYears: requiredYears,
		Met:           false,
	}
}

func qualificationGap(q types.QualificationMatch, careerYears int) string {
	if q.Met {
		return ""
	}
	return fmt.Sprintf("requires %d years of experience (currently %d)", q.RequiredYears, careerYears)
}

// buildRecommendations emits up to 3 templated sentences keyed off the
// missing-skill lists and the qualification shortfall.
func buildRecommendations(result *types.MatchResult, employee *types.EmployeeProfile) []string {
	recs := make([]string, 0, maxRecommendations)

	if len(result.SkillMatch.Basic.Missing) > 0 {
		recs = append(recs, fmt.Sprintf("Develop missing basic skills: %s",
			nameSkills(result.SkillMatch.Basic.Missing)))
	}
	if len(recs) < maxRecommendations && len(result.SkillMatch.Applied.Missing) > 0 {
		recs = append(recs, fmt.Sprintf("Build up applied skills: %s",
			nameSkills(result.SkillMatch.Applied.Missing)))
	}
	if len(recs) < maxRecommendations && !result.Qualification.Met {
		recs = append(recs, fmt.Sprintf("Gain %d more years of relevant experience (requires %d, currently %d)",
			result.Qualification.RequiredYears-employee.CareerYears,
			result.Qualification.RequiredYears, employee.CareerYears))
	}
	return recs
}

// nameSkills names up to 3 skills and summarizes the remainder.
func nameSkills(skills []string) string {
	count := len(skills)
	if count > maxNamedSkills {
		count = maxNamedSkills
	}
	named := strings.Join(skills[:count], ", ")
	if len(skills) > maxNamedSkills {
		named += fmt.Sprintf(" (+%d more)", len(skills)-maxNamedSkills)
	}
	return named
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
