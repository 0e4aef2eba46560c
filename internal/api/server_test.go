package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careplan-rule-engine/internal/domain"
	"github.com/careplan-rule-engine/internal/service"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &domain.Config{
		Server:     domain.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Logging:    domain.LoggingConfig{Level: "info", Format: "text"},
		Thresholds: domain.DefaultThresholds(),
		RateLimit:  domain.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}

	engine := service.NewCarePlanEngine(logger, cfg.Thresholds)
	return NewServer(cfg, logger, engine, nil)
}

func testRequestBody() CarePlanRequest {
	assessment := func(score float64) *domain.RiskAssessment {
		return &domain.RiskAssessment{
			Score:   score,
			Level:   domain.DefaultThresholds().LevelForScore(score),
			Factors: []string{"Elevated risk factors identified"},
		}
	}
	return CarePlanRequest{
		Profile: &domain.PatientProfile{
			Age:                52,
			Gender:             domain.GenderMale,
			HeightCM:           178,
			WeightKG:           95,
			SystolicBP:         142,
			DiastolicBP:        88,
			RestingHR:          76,
			FastingGlucose:     118,
			Cholesterol:        215,
			HDLCholesterol:     42,
			Smoking:            domain.SmokingFormer,
			ExerciseDays:       2,
			Alcohol:            domain.AlcoholModerate,
			FamilyDiabetes:     true,
			ExistingConditions: []string{domain.ConditionTagPrediabetes},
			Medications:        "Metformin 500mg",
		},
		Risks: &domain.RiskAssessmentSet{
			Diabetes:     assessment(0.65),
			HeartDisease: assessment(0.45),
			Hypertension: assessment(0.55),
		},
	}
}

func postCarePlan(t *testing.T, s *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/care-plan", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	s.Router().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleGenerateCarePlan(t *testing.T) {
	server := testServer(t)

	recorder := postCarePlan(t, server, testRequestBody())
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CarePlanResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.PlanID)
	assert.False(t, resp.GeneratedAt.IsZero())
	require.NotNil(t, resp.CarePlan)

	assert.Len(t, resp.CarePlan.Lifestyle, 5)
	for _, cat := range domain.AllLifestyleCategories {
		_, ok := resp.CarePlan.Lifestyle[cat]
		assert.True(t, ok, "lifestyle category %s missing from response", cat)
	}
	assert.NotEmpty(t, resp.CarePlan.MedicalFollowUp)
	assert.NotEmpty(t, resp.CarePlan.MonitoringSchedule)
}

func TestHandleGenerateCarePlanMissingAssessment(t *testing.T) {
	server := testServer(t)

	body := testRequestBody()
	body.Risks.Hypertension = nil

	recorder := postCarePlan(t, server, body)
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "hypertension", resp["condition"])
}

func TestHandleGenerateCarePlanInvalidBody(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/care-plan", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleGenerateCarePlanRequiresProfileAndRisks(t *testing.T) {
	server := testServer(t)

	recorder := postCarePlan(t, server, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleHealth(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestRequestIDPropagation(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-request-42")
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	assert.Equal(t, "test-request-42", recorder.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	server := testServer(t)

	// Generate one plan so the counters exist
	postCarePlan(t, server, testRequestBody())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "careplan_api_plans_total")
}

type staticEnricher struct {
	insights []string
}

func (s staticEnricher) Enrich(ctx context.Context, profile *domain.PatientProfile, plan *domain.CarePlan) ([]string, error) {
	return s.insights, nil
}

func TestHandleGenerateCarePlanAppendsInsights(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &domain.Config{
		Server:     domain.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Logging:    domain.LoggingConfig{Level: "info", Format: "text"},
		Thresholds: domain.DefaultThresholds(),
		RateLimit:  domain.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}
	engine := service.NewCarePlanEngine(logger, cfg.Thresholds)
	server := NewServer(cfg, logger, engine, staticEnricher{insights: []string{"Consider a sleep study"}})

	recorder := postCarePlan(t, server, testRequestBody())
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CarePlanResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Consider a sleep study"}, resp.CarePlan.AIInsights)
}
