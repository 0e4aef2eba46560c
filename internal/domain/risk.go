package domain

// RiskAssessment is one condition's scoring result, produced by the
// upstream risk-scoring collaborator and consumed here as an opaque,
// already-validated input.
type RiskAssessment struct {
	// Score is the continuous risk estimate in [0,1].
	Score float64 `json:"score"`
	// Level is the categorical tier derived from Score by the shared
	// threshold policy.
	Level RiskLevel `json:"risk_level"`
	// Factors lists the human-readable contributing factors in the order
	// the scorer ranked them. Non-empty whenever Score > 0.
	Factors []string `json:"factors"`
}

// RiskAssessmentSet holds exactly one assessment per assessed condition.
// All three must be present before any rule module runs; Validate enforces
// this so the engine can fail fast instead of producing a partial plan.
type RiskAssessmentSet struct {
	Diabetes     *RiskAssessment `json:"diabetes"`
	HeartDisease *RiskAssessment `json:"heart_disease"`
	Hypertension *RiskAssessment `json:"hypertension"`
}

// Validate returns a MissingAssessmentError for the first absent condition.
func (s *RiskAssessmentSet) Validate() error {
	for _, c := range AllConditions {
		if s.For(c) == nil {
			return &MissingAssessmentError{Condition: c}
		}
	}
	return nil
}

// For returns the assessment for the given condition, or nil if absent or
// the condition is unknown.
func (s *RiskAssessmentSet) For(c Condition) *RiskAssessment {
	switch c {
	case ConditionDiabetes:
		return s.Diabetes
	case ConditionHeartDisease:
		return s.HeartDisease
	case ConditionHypertension:
		return s.Hypertension
	default:
		return nil
	}
}
