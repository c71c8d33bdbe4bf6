// Package types provides type definitions for structured data used throughout the talent-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirement represents one role's requirement set as supplied by a job-profile store.
// It is immutable for the duration of a match call.
type JobRequirement struct {
	JobID              string   `json:"job_id" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	BasicSkills        []string `json:"basic_skills,omitempty"`
	AppliedSkills      []string `json:"applied_skills,omitempty"`
	Qualification      string   `json:"qualification,omitempty"`       // free text, may embed "N년" patterns
	MinRequiredLevel   string   `json:"min_required_level,omitempty"`  // e.g. "Lv.3"
	EvaluationStandard string   `json:"evaluation_standard,omitempty"` // minimum overall grade, e.g. "B+"
	MinProfessionalism string   `json:"min_professionalism,omitempty"` // separate professionalism bar, optional
}
