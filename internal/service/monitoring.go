package service

import (
	"fmt"

	"github.com/careplan-rule-engine/internal/domain"
)

// monitoringSchedule builds the self-tracking schedule. Weight, blood
// pressure, and physical activity rows are always present; glucose,
// cholesterol, and medication rows are emitted only when their gate is met.
func (e *CarePlanEngine) monitoringSchedule(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []domain.MonitoringItem {
	t := e.thresholds
	schedule := []domain.MonitoringItem{}

	// Weight monitoring
	if bmi := p.BMI(); bmi >= bmiOverweight {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Weight",
			Frequency: "Weekly",
			Target:    fmt.Sprintf("Target BMI 18.5-24.9 (current: %.1f)", bmi),
			Action:    "Track weight loss progress",
		})
	} else {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Weight",
			Frequency: "Monthly",
			Target:    "Maintain current healthy weight",
			Action:    "Monitor for changes",
		})
	}

	// Blood pressure monitoring
	if risks.Hypertension.Score >= t.RiskModerate {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Blood Pressure",
			Frequency: "Daily (home monitoring)",
			Target:    "<130/80 mmHg",
			Action:    "Log readings, report if consistently elevated",
		})
	} else {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Blood Pressure",
			Frequency: "Monthly",
			Target:    "<120/80 mmHg",
			Action:    "Monitor for trends",
		})
	}

	// Blood glucose monitoring
	if risks.Diabetes.Score >= t.RiskModerate {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Blood Glucose",
			Frequency: "Daily (if diabetic) or weekly (prediabetic)",
			Target:    "Fasting: 80-130 mg/dL",
			Action:    "Track patterns and report to physician",
		})
	}

	// Cholesterol monitoring
	if p.Cholesterol >= cholesterolElevated || risks.HeartDisease.Score >= t.RiskModerate {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Cholesterol Panel",
			Frequency: "Every 3-6 months",
			Target:    "Total <200 mg/dL, LDL <100 mg/dL",
			Action:    "Laboratory testing with physician review",
		})
	}

	// Exercise tracking, always present
	schedule = append(schedule, domain.MonitoringItem{
		Parameter: "Physical Activity",
		Frequency: "Daily",
		Target:    "150+ minutes moderate activity/week",
		Action:    "Log exercise duration and intensity",
	})

	// Medication adherence, gated on any non-whitespace medications text
	if p.HasMedications() {
		schedule = append(schedule, domain.MonitoringItem{
			Parameter: "Medication Adherence",
			Frequency: "Daily",
			Target:    "100% compliance",
			Action:    "Use pill organizer, set reminders",
		})
	}

	return schedule
}
