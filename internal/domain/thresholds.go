package domain

// Thresholds holds every clinical boundary the rule modules and the risk
// threshold policy share. Lifting them into one overridable structure keeps
// rule modules free of literal cutoffs and lets clinical-guideline updates
// land in one place.
//
// RiskModerate and RiskHigh serve double duty: they are both the
// score-to-tier boundaries and the "moderate-or-above" gates inside the
// rule modules, matching current guidelines.
type Thresholds struct {
	// RiskModerate is the score at which risk becomes Moderate (and the
	// gate for risk-tiered recommendations).
	RiskModerate float64 `mapstructure:"risk_moderate" json:"risk_moderate"`
	// RiskHigh is the score at which risk becomes High.
	RiskHigh float64 `mapstructure:"risk_high" json:"risk_high"`
	// RiskUrgent is the score at which score-based immediate actions fire.
	RiskUrgent float64 `mapstructure:"risk_urgent" json:"risk_urgent"`

	// SystolicCrisis and DiastolicCrisis define hypertensive crisis (mmHg).
	SystolicCrisis  float64 `mapstructure:"systolic_crisis" json:"systolic_crisis"`
	DiastolicCrisis float64 `mapstructure:"diastolic_crisis" json:"diastolic_crisis"`
	// GlucoseSevere defines severe hyperglycemia (mg/dL fasting).
	GlucoseSevere float64 `mapstructure:"glucose_severe" json:"glucose_severe"`
	// SystolicUncontrolled gates the uncontrolled-hypertension action (mmHg).
	SystolicUncontrolled float64 `mapstructure:"systolic_uncontrolled" json:"systolic_uncontrolled"`
}

// DefaultThresholds returns the clinically sourced default boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RiskModerate:         0.4,
		RiskHigh:             0.7,
		RiskUrgent:           0.8,
		SystolicCrisis:       180,
		DiastolicCrisis:      120,
		GlucoseSevere:        250,
		SystolicUncontrolled: 160,
	}
}

// LevelForScore converts a continuous risk score into its categorical tier:
// Low below RiskModerate, Moderate below RiskHigh, High at or above it.
// Defined for any input, including negative or out-of-range scores.
func (t Thresholds) LevelForScore(score float64) RiskLevel {
	switch {
	case score >= t.RiskHigh:
		return RiskHigh
	case score >= t.RiskModerate:
		return RiskModerate
	default:
		return RiskLow
	}
}
