package service

import (
	"github.com/careplan-rule-engine/internal/domain"
)

// The five lifestyle sub-engines. Each appends baseline advice first, then
// layers risk-tiered additions gated on the shared thresholds; within a
// category, insertion order is display order.

// dietRecommendations builds the diet_nutrition channel.
func (e *CarePlanEngine) dietRecommendations(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	recs := []string{}

	// General healthy eating
	recs = append(recs, "Follow a balanced diet rich in fruits, vegetables, whole grains, and lean proteins")

	// BMI-based tiers
	bmi := p.BMI()
	if bmi >= bmiObese {
		recs = append(recs,
			"Implement a structured weight loss plan targeting 1-2 pounds per week",
			"Consider consultation with a registered dietitian for personalized meal planning",
			"Practice portion control using smaller plates and measuring portions")
	} else if bmi >= bmiOverweight {
		recs = append(recs, "Focus on portion control and increase vegetable intake to achieve healthy weight")
	}

	// Glycemic control
	if risks.Diabetes.Score >= t.RiskModerate {
		recs = append(recs,
			"Limit refined carbohydrates and added sugars",
			"Choose complex carbohydrates with low glycemic index",
			"Include fiber-rich foods (≥25g daily) to help manage blood sugar",
			"Eat regular meals to maintain stable blood glucose levels")
	}

	// Heart-healthy diet
	if risks.HeartDisease.Score >= t.RiskModerate {
		recs = append(recs,
			"Follow heart-healthy diet (Mediterranean or DASH diet)",
			"Limit saturated fat to <7% of total calories",
			"Include omega-3 fatty acids from fish 2-3 times per week",
			"Limit sodium intake to <2,300mg daily (ideally <1,500mg)")
	}

	// Blood pressure diet
	if risks.Hypertension.Score >= t.RiskModerate {
		recs = append(recs,
			"Follow DASH diet emphasizing fruits, vegetables, and low-fat dairy",
			"Reduce sodium intake to <1,500mg daily",
			"Increase potassium-rich foods (bananas, oranges, spinach)",
			"Limit processed and packaged foods")
	}

	// Cholesterol management
	if p.Cholesterol >= cholesterolElevated {
		recs = append(recs,
			"Increase soluble fiber intake (oats, beans, apples)",
			"Include plant sterols and stanols in diet",
			"Choose lean proteins and limit red meat consumption")
	}

	return recs
}

// activityRecommendations builds the physical_activity channel, tiered by
// the patient's current exercise habit.
func (e *CarePlanEngine) activityRecommendations(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	recs := []string{}

	switch {
	case p.ExerciseDays < 3:
		recs = append(recs,
			"Gradually increase to 150 minutes of moderate-intensity aerobic activity per week",
			"Start with 10-15 minute walks and progressively increase duration",
			"Include resistance training 2-3 times per week")
	case p.ExerciseDays < 5:
		recs = append(recs,
			"Aim for 150-300 minutes of moderate-intensity exercise weekly",
			"Add variety with different types of cardio activities")
	default:
		recs = append(recs,
			"Maintain current excellent exercise routine",
			"Consider adding high-intensity interval training 1-2 times per week")
	}

	if p.BMI() >= bmiObese {
		recs = append(recs,
			"Focus on low-impact activities initially (swimming, cycling, walking)",
			"Incorporate strength training to preserve muscle mass during weight loss")
	}

	if risks.Diabetes.Score >= t.RiskModerate {
		recs = append(recs,
			"Include both aerobic and resistance training for optimal glucose control",
			"Exercise at consistent times to help regulate blood sugar",
			"Monitor blood glucose before and after exercise if diabetic")
	}

	if risks.HeartDisease.Score >= t.RiskModerate {
		recs = append(recs,
			"Start with cardiac-safe exercise program, progressing gradually",
			"Include warm-up and cool-down periods in all exercise sessions",
			"Monitor heart rate during exercise (target 50-85% max heart rate)")
	}

	if risks.Hypertension.Score >= t.RiskModerate {
		recs = append(recs,
			"Emphasize aerobic exercise which effectively lowers blood pressure",
			"Avoid heavy weightlifting initially; focus on moderate resistance training",
			"Monitor blood pressure response to exercise")
	}

	return recs
}

// stressRecommendations builds the stress_management channel.
func (e *CarePlanEngine) stressRecommendations(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	recs := []string{}

	recs = append(recs,
		"Practice daily stress-reduction techniques (meditation, deep breathing)",
		"Maintain social connections and seek support when needed",
		"Consider mindfulness-based stress reduction (MBSR) programs")

	if risks.HeartDisease.Score >= t.RiskModerate {
		recs = append(recs,
			"Learn and practice progressive muscle relaxation techniques",
			"Consider counseling or therapy for chronic stress management")
	}

	if risks.Hypertension.Score >= t.RiskModerate {
		recs = append(recs,
			"Practice daily meditation or yoga to help lower blood pressure",
			"Identify and address major stressors in work and personal life")
	}

	// General wellbeing advice closes the channel
	recs = append(recs,
		"Engage in enjoyable hobbies and recreational activities",
		"Maintain work-life balance and take regular vacations")

	return recs
}

// sleepRecommendations builds the sleep_hygiene channel.
func (e *CarePlanEngine) sleepRecommendations(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	recs := []string{}

	recs = append(recs,
		"Maintain consistent sleep schedule (7-9 hours nightly)",
		"Create a comfortable, dark, and quiet sleep environment",
		"Avoid screens 1 hour before bedtime",
		"Limit caffeine intake after 2 PM")

	if p.HasCondition(domain.ConditionTagSleepApnea) {
		recs = append(recs,
			"Ensure compliance with CPAP therapy if prescribed",
			"Sleep on side rather than back to reduce apnea episodes")
	}

	if p.BMI() >= bmiObese {
		recs = append(recs, "Weight loss can significantly improve sleep quality and reduce sleep apnea risk")
	}

	if risks.Diabetes.Score >= t.RiskModerate {
		recs = append(recs,
			"Maintain regular sleep schedule to help regulate blood sugar",
			"Avoid large meals close to bedtime")
	}

	recs = append(recs, "Consider relaxation techniques before bed (reading, gentle stretching)")

	return recs
}

// substanceUseRecommendations builds the substance_use channel. Unlike the
// other channels this one carries no unconditional baseline; it is empty
// for never-smokers who do not drink at low cardiovascular risk.
func (e *CarePlanEngine) substanceUseRecommendations(p *domain.PatientProfile, risks *domain.RiskAssessmentSet) []string {
	t := e.thresholds
	recs := []string{}

	// Smoking cessation
	switch p.Smoking {
	case domain.SmokingCurrent:
		recs = append(recs,
			"PRIORITY: Quit smoking immediately - consider nicotine replacement therapy",
			"Join smoking cessation program or seek counseling support",
			"Avoid triggers and develop healthy coping strategies",
			"Consider prescription medications for smoking cessation (consult physician)")
	case domain.SmokingFormer:
		recs = append(recs,
			"Continue to avoid tobacco products and secondhand smoke",
			"Maintain smoke-free environment at home and work")
	}

	// Alcohol
	switch p.Alcohol {
	case domain.AlcoholHeavy:
		recs = append(recs,
			"Reduce alcohol intake to moderate levels or consider abstinence",
			"Seek support for alcohol reduction if needed",
			"Limit alcohol to ≤1 drink/day (women) or ≤2 drinks/day (men)")
	case domain.AlcoholModerate:
		recs = append(recs, "Maintain current moderate alcohol consumption or consider reducing further")
	}

	// Elevated cardiovascular risk warrants full elimination
	if risks.HeartDisease.Score >= t.RiskHigh || risks.Hypertension.Score >= t.RiskHigh {
		if p.Alcohol != domain.AlcoholNone {
			recs = append(recs, "Consider eliminating alcohol completely to maximize cardiovascular benefits")
		}
	}

	return recs
}
