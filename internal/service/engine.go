// Package service implements the care plan rule engine: deterministic
// decision logic mapping a patient profile and a set of per-condition risk
// assessments into an actionable, categorized care plan.
package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/careplan-rule-engine/internal/domain"
)

// Body-composition and lab cutoffs used by several rule modules. Unlike
// the risk and acute-vital thresholds these follow fixed definitions
// (standard BMI classes, desirable total cholesterol) and are not
// configuration.
const (
	bmiOverweight       = 25.0
	bmiObese            = 30.0
	cholesterolElevated = 200.0
)

// CarePlanEngine derives a structured care plan from a patient profile and
// risk assessment results. Generation is a pure function of its inputs:
// no shared mutable state, no I/O, no wall-clock dependency, so repeated
// invocation with identical inputs yields identical plans.
type CarePlanEngine struct {
	logger     *logrus.Logger
	thresholds domain.Thresholds
}

// NewCarePlanEngine creates a new care plan engine using the given
// threshold configuration.
func NewCarePlanEngine(logger *logrus.Logger, thresholds domain.Thresholds) *CarePlanEngine {
	return &CarePlanEngine{
		logger:     logger,
		thresholds: thresholds,
	}
}

// GeneratePlan runs every rule module once over the immutable inputs and
// assembles their contributions into a fresh CarePlan.
//
// The modules are independent: each reads only the profile and the
// assessment set and appends to its own section, in fixed channel order
// {immediate_actions, lifestyle.*, medical_followup, monitoring_schedule}.
// No module sees another's output, and the assembler performs no filtering
// or deduplication; overlapping advice across channels is intentional
// reinforcement for salient risks.
//
// Fails fast with a MissingAssessmentError if any condition assessment is
// absent, before any rule module runs.
func (e *CarePlanEngine) GeneratePlan(profile *domain.PatientProfile, risks *domain.RiskAssessmentSet) (*domain.CarePlan, error) {
	if err := risks.Validate(); err != nil {
		return nil, fmt.Errorf("incomplete risk assessment set: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"age":                profile.Age,
		"bmi":                fmt.Sprintf("%.1f", profile.BMI()),
		"diabetes_risk":      risks.Diabetes.Score,
		"heart_disease_risk": risks.HeartDisease.Score,
		"hypertension_risk":  risks.Hypertension.Score,
	}).Debug("Generating care plan")

	plan := domain.NewCarePlan()

	plan.ImmediateActions = e.immediateActions(profile, risks)

	plan.Lifestyle[domain.CategoryDietNutrition] = e.dietRecommendations(profile, risks)
	plan.Lifestyle[domain.CategoryPhysicalActivity] = e.activityRecommendations(profile, risks)
	plan.Lifestyle[domain.CategoryStressManagement] = e.stressRecommendations(profile, risks)
	plan.Lifestyle[domain.CategorySleepHygiene] = e.sleepRecommendations(profile, risks)
	plan.Lifestyle[domain.CategorySubstanceUse] = e.substanceUseRecommendations(profile, risks)

	plan.MedicalFollowUp = e.medicalFollowUp(profile, risks)
	plan.MonitoringSchedule = e.monitoringSchedule(profile, risks)

	e.logger.WithFields(logrus.Fields{
		"immediate_actions": len(plan.ImmediateActions),
		"followup_items":    len(plan.MedicalFollowUp),
		"monitoring_rows":   len(plan.MonitoringSchedule),
		"lifestyle_items":   countLifestyleItems(plan),
	}).Info("Care plan generated")

	return plan, nil
}

// Thresholds returns the threshold configuration the engine evaluates with.
func (e *CarePlanEngine) Thresholds() domain.Thresholds {
	return e.thresholds
}

// anyModerateRisk reports whether any assessed condition scores at or above
// the moderate boundary. Used where a rule gates on "risk factors present".
func (e *CarePlanEngine) anyModerateRisk(risks *domain.RiskAssessmentSet) bool {
	for _, c := range domain.AllConditions {
		if risks.For(c).Score >= e.thresholds.RiskModerate {
			return true
		}
	}
	return false
}

func countLifestyleItems(plan *domain.CarePlan) int {
	total := 0
	for _, recs := range plan.Lifestyle {
		total += len(recs)
	}
	return total
}
