// Package store loads employee, job, and transition-history data files.
package store

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RecordError represents an invalid record found during struct validation
type RecordError struct {
	Kind    string // "employee" or "job"
	ID      string
	Message string
	Cause   error
}

func (e *RecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s record %s: %s: %v", e.Kind, e.ID, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s record %s: %s", e.Kind, e.ID, e.Message)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
