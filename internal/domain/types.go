// Package domain contains the core entities for condition-specific risk
// assessment and care plan generation: the patient profile, the per-condition
// risk assessments produced upstream, and the structured care plan this
// engine derives from them.
package domain

// RiskLevel is the categorical tier derived from a continuous risk score
// by the shared threshold policy (see Thresholds.LevelForScore).
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Condition identifies one of the assessed chronic conditions. The set is
// closed: every RiskAssessmentSet carries exactly one assessment per
// condition listed here.
type Condition string

const (
	ConditionDiabetes     Condition = "diabetes"
	ConditionHeartDisease Condition = "heart_disease"
	ConditionHypertension Condition = "hypertension"
)

// AllConditions lists every assessed condition in canonical order.
var AllConditions = []Condition{
	ConditionDiabetes,
	ConditionHeartDisease,
	ConditionHypertension,
}

// LifestyleCategory identifies one recommendation channel of the care plan.
// Every generated plan contains all five categories, even when a category
// holds no recommendations.
type LifestyleCategory string

const (
	CategoryDietNutrition    LifestyleCategory = "diet_nutrition"
	CategoryPhysicalActivity LifestyleCategory = "physical_activity"
	CategoryStressManagement LifestyleCategory = "stress_management"
	CategorySleepHygiene     LifestyleCategory = "sleep_hygiene"
	CategorySubstanceUse     LifestyleCategory = "substance_use"
)

// AllLifestyleCategories lists every lifestyle channel in display order.
var AllLifestyleCategories = []LifestyleCategory{
	CategoryDietNutrition,
	CategoryPhysicalActivity,
	CategoryStressManagement,
	CategorySleepHygiene,
	CategorySubstanceUse,
}

// Gender represents biological sex as captured on the intake form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// SmokingStatus represents the patient's smoking history.
type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "Never"
	SmokingFormer  SmokingStatus = "Former"
	SmokingCurrent SmokingStatus = "Current"
)

// AlcoholUse represents the patient's weekly alcohol consumption pattern.
type AlcoholUse string

const (
	AlcoholNone     AlcoholUse = "None"
	AlcoholLight    AlcoholUse = "Light"
	AlcoholModerate AlcoholUse = "Moderate"
	AlcoholHeavy    AlcoholUse = "Heavy"
)

// IsValid reports whether the risk level is one of the defined tiers.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// IsValid reports whether the condition is one of the assessed conditions.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionDiabetes, ConditionHeartDisease, ConditionHypertension:
		return true
	default:
		return false
	}
}

// String returns the condition key used in requests and plan output.
func (c Condition) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the five plan channels.
func (lc LifestyleCategory) IsValid() bool {
	switch lc {
	case CategoryDietNutrition, CategoryPhysicalActivity, CategoryStressManagement,
		CategorySleepHygiene, CategorySubstanceUse:
		return true
	default:
		return false
	}
}

// String returns the category key used in plan output.
func (lc LifestyleCategory) String() string {
	return string(lc)
}

// IsValid reports whether the gender value is recognized.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// IsValid reports whether the smoking status is recognized.
func (s SmokingStatus) IsValid() bool {
	switch s {
	case SmokingNever, SmokingFormer, SmokingCurrent:
		return true
	default:
		return false
	}
}

// IsValid reports whether the alcohol consumption level is recognized.
func (a AlcoholUse) IsValid() bool {
	switch a {
	case AlcoholNone, AlcoholLight, AlcoholModerate, AlcoholHeavy:
		return true
	default:
		return false
	}
}
