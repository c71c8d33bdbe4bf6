// Package parsing provides the leaf text-normalization and extraction
// helpers shared by every matching component.
package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-compass/internal/types"
)

// NormalizeSkill normalizes one skill string for comparison: trimmed and
// lowercased. Returns "" for blank input.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkillSet normalizes and deduplicates a skill list into a set.
// Blank entries are dropped.
func NormalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		normalized := NormalizeSkill(s)
		if normalized == "" {
			continue
		}
		set[normalized] = true
	}
	return set
}

// SkillPool builds the union of an employee's skills, certifications and
// completed courses as a normalized set. This is the B side of every
// set-similarity computation.
func SkillPool(employee *types.EmployeeProfile) map[string]bool {
	pool := NormalizeSkillSet(employee.Skills)
	for s := range NormalizeSkillSet(employee.Certifications) {
		pool[s] = true
	}
	for s := range NormalizeSkillSet(employee.CompletedCourses) {
		pool[s] = true
	}
	return pool
}

// SetSimilarity computes |A∩B| / |A∪B| * 100 between a required skill set
// and a possessed skill pool, returning the score, the sorted missing
// required skills, and the matched count. An empty requirement set scores
// 100 with nothing missing.
func SetSimilarity(required, pool map[string]bool) (float64, []string, int) {
	if len(required) == 0 {
		return 100.0, nil, 0
	}

	matched := 0
	missing := make([]string, 0)
	for skill := range required {
		if pool[skill] {
			matched++
		} else {
			missing = append(missing, skill)
		}
	}
	// Sorted so identical inputs always produce identical output regardless
	// of map iteration order.
	sort.Strings(missing)

	union := len(required) + len(pool) - matched
	if union == 0 {
		return 100.0, nil, 0
	}

	score := float64(matched) / float64(union) * 100.0
	return score, missing, matched
}

// SortedSet returns the members of a normalized set in sorted order.
func SortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
