// Package store loads employee, job, and transition-history data files.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-compass/internal/types"
)

var validate = validator.New()

// LoadEmployees loads an employee list from a JSON file. Each record is
// validated against the struct tags on EmployeeProfile.
func LoadEmployees(path string) ([]types.EmployeeProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var employees []types.EmployeeProfile
	if err := json.Unmarshal(content, &employees); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal employee JSON",
			Cause:   err,
		}
	}

	for i := range employees {
		if err := validate.Struct(&employees[i]); err != nil {
			return nil, &RecordError{
				Kind:    "employee",
				ID:      employees[i].EmployeeID,
				Message: "struct validation failed",
				Cause:   err,
			}
		}
	}

	return employees, nil
}

// LoadEmployee loads a single employee profile from a JSON file.
func LoadEmployee(path string) (*types.EmployeeProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var employee types.EmployeeProfile
	if err := json.Unmarshal(content, &employee); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal employee JSON",
			Cause:   err,
		}
	}

	if err := validate.Struct(&employee); err != nil {
		return nil, &RecordError{
			Kind:    "employee",
			ID:      employee.EmployeeID,
			Message: "struct validation failed",
			Cause:   err,
		}
	}

	return &employee, nil
}

// LoadJobs loads a job catalog from a JSON file.
func LoadJobs(path string) ([]types.JobRequirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var jobs []types.JobRequirement
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal job JSON",
			Cause:   err,
		}
	}

	for i := range jobs {
		if err := validate.Struct(&jobs[i]); err != nil {
			return nil, &RecordError{
				Kind:    "job",
				ID:      jobs[i].JobID,
				Message: "struct validation failed",
				Cause:   err,
			}
		}
	}

	return jobs, nil
}

// JobCatalog indexes a job list by name for catalog lookups.
func JobCatalog(jobs []types.JobRequirement) map[string]types.JobRequirement {
	catalog := make(map[string]types.JobRequirement, len(jobs))
	for _, job := range jobs {
		catalog[job.Name] = job
	}
	return catalog
}

// FindJob returns the job with the given ID or name, searching ID first.
func FindJob(jobs []types.JobRequirement, idOrName string) (*types.JobRequirement, error) {
	for i := range jobs {
		if jobs[i].JobID == idOrName {
			return &jobs[i], nil
		}
	}
	for i := range jobs {
		if jobs[i].Name == idOrName {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("job not found: %s", idOrName)
}

// FindEmployee returns the employee with the given ID.
func FindEmployee(employees []types.EmployeeProfile, id string) (*types.EmployeeProfile, error) {
	for i := range employees {
		if employees[i].EmployeeID == id {
			return &employees[i], nil
		}
	}
	return nil, fmt.Errorf("employee not found: %s", id)
}

// LoadTransitionHistory loads per-employee job sequences from a JSON file.
// The format is a map from employee ID to the ordered list of jobs held.
func LoadTransitionHistory(path string) (map[string][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var history map[string][]string
	if err := json.Unmarshal(content, &history); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal transition history JSON",
			Cause:   err,
		}
	}

	return history, nil
}
