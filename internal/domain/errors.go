package domain

import "fmt"

// MissingAssessmentError reports a required condition absent from a
// RiskAssessmentSet. It is fatal: the engine raises it before any rule
// module runs, so no partial plan is ever produced.
type MissingAssessmentError struct {
	Condition Condition
}

// Error implements the error interface.
func (e *MissingAssessmentError) Error() string {
	return fmt.Sprintf("missing risk assessment for condition %q", e.Condition)
}

// ValidationError represents a malformed request field at the API boundary.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}
