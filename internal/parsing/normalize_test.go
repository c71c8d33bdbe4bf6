package parsing

import (
	"testing"

	"github.com/jonathan/talent-compass/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	assert.Equal(t, "python", NormalizeSkill("  Python "))
	assert.Equal(t, "sql", NormalizeSkill("SQL"))
	assert.Equal(t, "데이터 분석", NormalizeSkill(" 데이터 분석 "))
	assert.Equal(t, "", NormalizeSkill("   "))
}

func TestNormalizeSkillSet_Deduplicates(t *testing.T) {
	set := NormalizeSkillSet([]string{"Python", "python", " PYTHON ", "SQL", ""})
	assert.Len(t, set, 2)
	assert.True(t, set["python"])
	assert.True(t, set["sql"])
}

func TestSkillPool_UnionsAllSources(t *testing.T) {
	employee := &types.EmployeeProfile{
		Skills:           []string{"Python"},
		Certifications:   []string{"SQLD"},
		CompletedCourses: []string{"데이터 분석", "python"},
	}

	pool := SkillPool(employee)
	assert.Len(t, pool, 3)
	assert.True(t, pool["python"])
	assert.True(t, pool["sqld"])
	assert.True(t, pool["데이터 분석"])
}

func TestSetSimilarity_FullMatch(t *testing.T) {
	required := NormalizeSkillSet([]string{"SQL", "Python"})
	pool := NormalizeSkillSet([]string{"sql", "python"})

	score, missing, matched := SetSimilarity(required, pool)
	assert.InDelta(t, 100.0, score, 0.0001)
	assert.Empty(t, missing)
	assert.Equal(t, 2, matched)
}

func TestSetSimilarity_PartialMatch(t *testing.T) {
	required := NormalizeSkillSet([]string{"SQL", "Python", "Spark"})
	pool := NormalizeSkillSet([]string{"sql"})

	score, missing, matched := SetSimilarity(required, pool)
	// intersection 1, union 3
	assert.InDelta(t, 100.0/3.0, score, 0.0001)
	assert.Equal(t, []string{"python", "spark"}, missing)
	assert.Equal(t, 1, matched)
}

func TestSetSimilarity_EmptyRequirement(t *testing.T) {
	score, missing, matched := SetSimilarity(nil, NormalizeSkillSet([]string{"go"}))
	assert.InDelta(t, 100.0, score, 0.0001)
	assert.Empty(t, missing)
	assert.Equal(t, 0, matched)
}

func TestSetSimilarity_ExtraPoolSkillsLowerJaccard(t *testing.T) {
	required := NormalizeSkillSet([]string{"sql"})
	pool := NormalizeSkillSet([]string{"sql", "go", "python"})

	score, missing, _ := SetSimilarity(required, pool)
	// intersection 1, union 3
	assert.InDelta(t, 100.0/3.0, score, 0.0001)
	assert.Empty(t, missing)
}

func TestSetSimilarity_MissingSorted(t *testing.T) {
	required := NormalizeSkillSet([]string{"zookeeper", "airflow", "kafka"})
	pool := map[string]bool{}

	_, missing, _ := SetSimilarity(required, pool)
	assert.Equal(t, []string{"airflow", "kafka", "zookeeper"}, missing)
}
