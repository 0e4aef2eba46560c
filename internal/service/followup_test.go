package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careplan-rule-engine/internal/domain"
)

func TestMedicalFollowUpExamCadence(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name  string
		age   int
		risks *domain.RiskAssessmentSet
		want  string
	}{
		{
			name:  "Age 40 gets annual exam",
			age:   40,
			risks: riskSet(0, 0, 0),
			want:  "Annual comprehensive physical examination",
		},
		{
			name:  "Under 40 without risk factors gets longer cadence",
			age:   39,
			risks: riskSet(0.2, 0.2, 0.2),
			want:  "Physical examination every 2-3 years",
		},
		{
			name:  "Under 40 with any moderate risk gets annual cadence",
			age:   28,
			risks: riskSet(0.2, 0.45, 0.2),
			want:  "Annual physical examination while risk factors remain elevated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := healthyProfile()
			profile.Age = tt.age

			followup := engine.medicalFollowUp(profile, tt.risks)
			require.NotEmpty(t, followup)
			assert.Equal(t, tt.want, followup[0])
		})
	}
}

func TestMedicalFollowUpConditionTiers(t *testing.T) {
	engine := testEngine()

	t.Run("Diabetes tier", func(t *testing.T) {
		followup := engine.medicalFollowUp(healthyProfile(), riskSet(0.5, 0, 0))
		assert.Contains(t, followup, "HbA1c testing every 3-6 months")
		assert.Contains(t, followup, "Annual diabetic eye examination")
		assert.Contains(t, followup, "Annual foot examination for diabetic complications")
		assert.Contains(t, followup, "Consider continuous glucose monitoring if diabetic")
	})

	t.Run("Heart disease tier", func(t *testing.T) {
		followup := engine.medicalFollowUp(healthyProfile(), riskSet(0, 0.5, 0))
		assert.Contains(t, followup, "Lipid panel every 3-6 months until goals achieved, then annually")
		assert.Contains(t, followup, "Blood pressure monitoring at each medical visit")
	})

	t.Run("Hypertension tier", func(t *testing.T) {
		followup := engine.medicalFollowUp(healthyProfile(), riskSet(0, 0, 0.5))
		assert.Contains(t, followup, "Blood pressure monitoring every 2-4 weeks until controlled")
		assert.Contains(t, followup, "Kidney function tests annually")
	})
}

func TestMedicalFollowUpClosesWithPreventiveCare(t *testing.T) {
	engine := testEngine()

	followup := engine.medicalFollowUp(healthyProfile(), riskSet(0.9, 0.9, 0.9))
	require.True(t, len(followup) >= 3)

	n := len(followup)
	assert.Equal(t, "Age-appropriate cancer screenings (colonoscopy, mammography, etc.)", followup[n-3])
	assert.Equal(t, "Vaccination updates as recommended", followup[n-2])
	assert.Equal(t, "Bone density screening if indicated", followup[n-1])
}
