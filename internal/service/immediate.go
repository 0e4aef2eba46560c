package service

import (
	"github.com/careplan-rule-engine/internal/domain"
)

// immediateActions detects acute, threshold-crossing danger states. The
// triggers are disjoint and evaluated independently, so every matching one
// appends, in fixed order: vital-sign emergencies first, then score-based
// scheduling actions.
func (e *CarePlanEngine) immediateActions(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	actions := []string{}

	// Blood pressure emergency
	if p.SystolicBP >= t.SystolicCrisis || p.DiastolicBP >= t.DiastolicCrisis {
		actions = append(actions,
			"URGENT: Seek immediate medical attention for hypertensive crisis (BP ≥180/120)")
	}

	// Severe hyperglycemia
	if p.FastingGlucose >= t.GlucoseSevere {
		actions = append(actions,
			"URGENT: Seek immediate medical attention for severe hyperglycemia (glucose ≥250 mg/dL)")
	}

	// Very high diabetes risk
	if risks.Diabetes.Score >= t.RiskUrgent {
		actions = append(actions,
			"Schedule medical evaluation within 2 weeks for diabetes screening and management")
	}

	// Very high heart disease risk
	if risks.HeartDisease.Score >= t.RiskUrgent {
		actions = append(actions,
			"Schedule cardiology consultation within 1 month for comprehensive cardiac risk assessment")
	}

	// Uncontrolled hypertension
	if risks.Hypertension.Score >= t.RiskUrgent && p.SystolicBP >= t.SystolicUncontrolled {
		actions = append(actions,
			"Schedule medical appointment within 1 week to initiate or adjust blood pressure medication")
	}

	return actions
}
