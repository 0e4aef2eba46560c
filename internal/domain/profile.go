package domain

import "strings"

// Known existing-condition tags that the rule modules inspect. The
// ExistingConditions list is free-form beyond these; unrecognized tags are
// carried but never gate a rule.
const (
	ConditionTagNone            = "None"
	ConditionTagPrediabetes     = "Prediabetes"
	ConditionTagHighCholesterol = "High Cholesterol"
	ConditionTagSleepApnea      = "Sleep Apnea"
	ConditionTagThyroidDisorder = "Thyroid Disorder"
	ConditionTagKidneyDisease   = "Kidney Disease"
)

// PatientProfile is the immutable snapshot of one individual's demographic,
// vital, lab, and lifestyle attributes. Numeric ranges are enforced by the
// upstream validation step; the rule engine treats out-of-range values as
// simply not meeting any threshold rather than rejecting them.
type PatientProfile struct {
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`

	SystolicBP  float64 `json:"systolic_bp"`
	DiastolicBP float64 `json:"diastolic_bp"`
	RestingHR   float64 `json:"resting_hr"`

	FastingGlucose float64 `json:"fasting_glucose"`
	Cholesterol    float64 `json:"cholesterol"`
	HDLCholesterol float64 `json:"hdl_cholesterol"`

	Smoking      SmokingStatus `json:"smoking"`
	ExerciseDays int           `json:"exercise_days"`
	Alcohol      AlcoholUse    `json:"alcohol_consumption"`

	FamilyDiabetes     bool `json:"family_diabetes"`
	FamilyHeartDisease bool `json:"family_heart_disease"`
	FamilyHypertension bool `json:"family_hypertension"`

	ExistingConditions []string `json:"existing_conditions"`
	Medications        string   `json:"medications"`
}

// BMI returns the body mass index derived from height and weight.
// Returns 0 for non-positive height so threshold comparisons stay total.
func (p *PatientProfile) BMI() float64 {
	if p.HeightCM <= 0 {
		return 0
	}
	heightM := p.HeightCM / 100
	return p.WeightKG / (heightM * heightM)
}

// HasCondition reports whether the given tag appears in the patient's
// existing conditions.
func (p *PatientProfile) HasCondition(tag string) bool {
	for _, c := range p.ExistingConditions {
		if c == tag {
			return true
		}
	}
	return false
}

// HasMedications reports whether the free-text medications field contains
// any non-whitespace text. This presence check is deliberately the only
// medication signal: the source data carries no structured medication list.
func (p *PatientProfile) HasMedications() bool {
	return strings.TrimSpace(p.Medications) != ""
}
