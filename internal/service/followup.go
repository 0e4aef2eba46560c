package service

import (
	"github.com/careplan-rule-engine/internal/domain"
)

// medicalFollowUp builds the recurring clinical-visit cadence. Patients
// under 40 get the longer cadence unless any condition already scores
// moderate-or-above, in which case the annual cadence applies.
func (e *CarePlanEngine) medicalFollowUp(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	followup := []string{}

	switch {
	case p.Age >= 40:
		followup = append(followup, "Annual comprehensive physical examination")
	case e.anyModerateRisk(risks):
		followup = append(followup, "Annual physical examination while risk factors remain elevated")
	default:
		followup = append(followup, "Physical examination every 2-3 years")
	}

	// Diabetes-specific follow-up
	if risks.Diabetes.Score >= t.RiskModerate {
		followup = append(followup,
			"HbA1c testing every 3-6 months",
			"Annual diabetic eye examination",
			"Annual foot examination for diabetic complications",
			"Consider continuous glucose monitoring if diabetic")
	}

	// Heart disease follow-up
	if risks.HeartDisease.Score >= t.RiskModerate {
		followup = append(followup,
			"Lipid panel every 3-6 months until goals achieved, then annually",
			"Consider stress testing or cardiac imaging if symptoms develop",
			"Blood pressure monitoring at each medical visit")
	}

	// Hypertension follow-up
	if risks.Hypertension.Score >= t.RiskModerate {
		followup = append(followup,
			"Blood pressure monitoring every 2-4 weeks until controlled",
			"Home blood pressure monitoring with log",
			"Kidney function tests annually")
	}

	// Preventive care closes the list
	followup = append(followup,
		"Age-appropriate cancer screenings (colonoscopy, mammography, etc.)",
		"Vaccination updates as recommended",
		"Bone density screening if indicated")

	return followup
}
