package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEmployees_Valid(t *testing.T) {
	path := writeTemp(t, "employees.json", `[
		{
			"employee_id": "emp_001",
			"name": "김철수",
			"career_years": 5,
			"skills": ["SQL", "Python"],
			"current_job": "분석가",
			"current_level": "Lv.3"
		}
	]`)

	employees, err := LoadEmployees(path)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp_001", employees[0].EmployeeID)
	assert.Equal(t, []string{"SQL", "Python"}, employees[0].Skills)
}

func TestLoadEmployees_MissingRequiredField(t *testing.T) {
	path := writeTemp(t, "employees.json", `[{"name": "무명"}]`)

	_, err := LoadEmployees(path)
	require.Error(t, err)
	var recordErr *RecordError
	require.ErrorAs(t, err, &recordErr)
	assert.Equal(t, "employee", recordErr.Kind)
}

func TestLoadEmployees_FileNotFound(t *testing.T) {
	_, err := LoadEmployees(filepath.Join(t.TempDir(), "absent.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadEmployees_InvalidJSON(t *testing.T) {
	path := writeTemp(t, "employees.json", `{not valid`)
	_, err := LoadEmployees(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadJobs_Valid(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[
		{
			"job_id": "job_001",
			"name": "데이터 엔지니어",
			"basic_skills": ["SQL"],
			"applied_skills": ["Spark"],
			"qualification": "3년 이상"
		}
	]`)

	jobs, err := LoadJobs(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "데이터 엔지니어", jobs[0].Name)
}

func TestLoadJobs_MissingName(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[{"job_id": "job_001"}]`)
	_, err := LoadJobs(path)
	var recordErr *RecordError
	require.ErrorAs(t, err, &recordErr)
	assert.Equal(t, "job", recordErr.Kind)
	assert.Equal(t, "job_001", recordErr.ID)
}

func TestLoadTransitionHistory(t *testing.T) {
	path := writeTemp(t, "history.json", `{
		"emp_001": ["분석가", "시니어 분석가", "데이터 팀장"],
		"emp_002": ["분석가", "데이터 엔지니어"]
	}`)

	history, err := LoadTransitionHistory(path)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, []string{"분석가", "시니어 분석가", "데이터 팀장"}, history["emp_001"])
}

func TestFindJob_ByIDThenName(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[
		{"job_id": "job_001", "name": "분석가"},
		{"job_id": "job_002", "name": "데이터 팀장"}
	]`)
	jobs, err := LoadJobs(path)
	require.NoError(t, err)

	byID, err := FindJob(jobs, "job_002")
	require.NoError(t, err)
	assert.Equal(t, "데이터 팀장", byID.Name)

	byName, err := FindJob(jobs, "분석가")
	require.NoError(t, err)
	assert.Equal(t, "job_001", byName.JobID)

	_, err = FindJob(jobs, "없는 직무")
	assert.Error(t, err)
}

func TestFindEmployee(t *testing.T) {
	path := writeTemp(t, "employees.json", `[
		{"employee_id": "emp_001", "name": "김철수"}
	]`)
	employees, err := LoadEmployees(path)
	require.NoError(t, err)

	found, err := FindEmployee(employees, "emp_001")
	require.NoError(t, err)
	assert.Equal(t, "김철수", found.Name)

	_, err = FindEmployee(employees, "emp_404")
	assert.Error(t, err)
}

func TestJobCatalog(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[
		{"job_id": "job_001", "name": "분석가"},
		{"job_id": "job_002", "name": "데이터 팀장"}
	]`)
	jobs, err := LoadJobs(path)
	require.NoError(t, err)

	catalog := JobCatalog(jobs)
	assert.Len(t, catalog, 2)
	assert.Equal(t, "job_002", catalog["데이터 팀장"].JobID)
}
